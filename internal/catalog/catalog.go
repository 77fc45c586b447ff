// internal/catalog/catalog.go
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/livrestore/storefront/internal/models"
)

// PlaceholderImage is used when a listing is created without a photo.
const PlaceholderImage = "https://picsum.photos/seed/placeholder/400/400"

// Categories is static reference data for the storefront navigation.
var Categories = []models.Category{
	{ID: "eletronicos", Name: "Eletrônicos", Icon: "smartphone"},
	{ID: "moda", Name: "Moda e Acessórios", Icon: "shirt"},
	{ID: "casa", Name: "Casa e Decoração", Icon: "home"},
	{ID: "esportes", Name: "Esportes e Lazer", Icon: "dumbbell"},
	{ID: "veiculos", Name: "Veículos e Peças", Icon: "car"},
	{ID: "informatica", Name: "Informática", Icon: "laptop"},
	{ID: "games", Name: "Games", Icon: "gamepad"},
	{ID: "beleza", Name: "Beleza e Cuidados", Icon: "sparkles"},
}

var seed = []models.Product{
	{
		ID:           "p-1001",
		Title:        "Smartphone Samsung Galaxy S23 128GB Preto",
		Price:        decimal.RequireFromString("2899.00"),
		Description:  "Tela Dynamic AMOLED 6.1\", 8GB RAM, câmera tripla 50MP. Lacrado com nota fiscal e garantia.",
		Category:     "Eletrônicos",
		Image:        "https://picsum.photos/seed/p-1001/400/400",
		Rating:       4.8,
		ReviewsCount: 1245,
		Condition:    models.ConditionNew,
		IsFlashDeal:  true,
		FreeShipping: true,
		FullDelivery: true,
	},
	{
		ID:           "p-1002",
		Title:        "Tênis Nike Air Max Masculino Corrida",
		Price:        decimal.RequireFromString("399.90"),
		Description:  "Tênis original, amortecimento Air Max, numerações 38 a 44.",
		Category:     "Moda e Acessórios",
		Image:        "https://picsum.photos/seed/p-1002/400/400",
		Rating:       4.6,
		ReviewsCount: 532,
		Condition:    models.ConditionNew,
		FreeShipping: true,
	},
	{
		ID:           "p-1003",
		Title:        "Notebook Dell Inspiron 15 i5 16GB SSD 512GB",
		Price:        decimal.RequireFromString("3450.00"),
		Description:  "Intel Core i5 12ª geração, tela Full HD, Windows 11. Ideal para trabalho e estudos.",
		Category:     "Informática",
		Image:        "https://picsum.photos/seed/p-1003/400/400",
		Rating:       4.7,
		ReviewsCount: 318,
		Condition:    models.ConditionNew,
		FreeShipping: true,
		FullDelivery: true,
	},
	{
		ID:           "p-1004",
		Title:        "Bicicleta Aro 29 Shimano 21 Marchas",
		Price:        decimal.RequireFromString("1150.00"),
		Description:  "Quadro de alumínio, freio a disco, suspensão dianteira. Pouco uso, revisada.",
		Category:     "Esportes e Lazer",
		Image:        "https://picsum.photos/seed/p-1004/400/400",
		Rating:       4.4,
		ReviewsCount: 87,
		Condition:    models.ConditionUsed,
	},
	{
		ID:           "p-1005",
		Title:        "Console PlayStation 5 Slim 1TB + 2 Controles",
		Price:        decimal.RequireFromString("3799.00"),
		Description:  "Edição com leitor de disco, dois controles DualSense, na caixa.",
		Category:     "Games",
		Image:        "https://picsum.photos/seed/p-1005/400/400",
		Rating:       4.9,
		ReviewsCount: 2034,
		Condition:    models.ConditionNew,
		IsFlashDeal:  true,
		FreeShipping: true,
	},
	{
		ID:           "p-1006",
		Title:        "Jogo de Panelas Antiaderente 10 Peças",
		Price:        decimal.RequireFromString("189.90"),
		Description:  "Revestimento cerâmico, cabos soft touch, compatível com indução.",
		Category:     "Casa e Decoração",
		Image:        "https://picsum.photos/seed/p-1006/400/400",
		Rating:       4.3,
		ReviewsCount: 410,
		Condition:    models.ConditionNew,
	},
	{
		ID:           "p-1007",
		Title:        "Capacete Moto Fechado Viseira Fumê",
		Price:        decimal.RequireFromString("219.00"),
		Description:  "Certificado pelo Inmetro, tamanhos 56 a 62, forro removível.",
		Category:     "Veículos e Peças",
		Image:        "https://picsum.photos/seed/p-1007/400/400",
		Rating:       4.5,
		ReviewsCount: 156,
		Condition:    models.ConditionNew,
		FreeShipping: true,
	},
	{
		ID:           "p-1008",
		Title:        "Kit Skincare Facial Completo 5 Itens",
		Price:        decimal.RequireFromString("129.90"),
		Description:  "Sabonete facial, tônico, sérum vitamina C, hidratante e protetor solar.",
		Category:     "Beleza e Cuidados",
		Image:        "https://picsum.photos/seed/p-1008/400/400",
		Rating:       4.7,
		ReviewsCount: 689,
		Condition:    models.ConditionNew,
	},
}

// Seed returns a copy of the static product catalog.
func Seed() []models.Product {
	out := make([]models.Product, len(seed))
	copy(out, seed)
	return out
}

// Combined returns the browsing catalog: the session's own listings first,
// then the static catalog, order preserved.
func Combined(ownListings []models.Product) []models.Product {
	out := make([]models.Product, 0, len(ownListings)+len(seed))
	out = append(out, ownListings...)
	out = append(out, seed...)
	return out
}

// Filter applies a case-insensitive substring match against title or
// category. The empty query matches everything; catalog order is preserved.
func Filter(products []models.Product, query string) []models.Product {
	q := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FindByID searches the given catalog slice; returns nil when absent.
func FindByID(products []models.Product, id string) *models.Product {
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p
		}
	}
	return nil
}
