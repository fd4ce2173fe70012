package db

import "github.com/lovehampers/lovehampers-backend/internal/app/model"

// CatalogFixture returns the storefront's Valentine's catalog. Identifiers
// are stable strings; bundles built by customers get generated "custom-"
// identifiers and never appear here.
func CatalogFixture() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Love Letter Box",
			Price:       450,
			Category:    model.CategoryBudget,
			ImageURL:    "https://i.pinimg.com/1200x/19/b5/20/19b520dd2d19a3b0c51f7d88fe3e5142.jpg",
			Description: "Handwritten love letters with rose petals in a beautiful keepsake box.",
		},
		{
			ID:          "2",
			Name:        "Red Rose Hamper",
			Price:       2500,
			Category:    model.CategoryHampers,
			ImageURL:    "https://i.pinimg.com/736x/58/67/c5/5867c5181d6a3613073c72e23c3bc7bb.jpg",
			Description: "Luxury hamper with roses, chocolates, wine, and scented candles.",
		},
		{
			ID:          "3",
			Name:        "Custom Love Website",
			Price:       3500,
			Category:    model.CategoryDigital,
			ImageURL:    "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400&h=400&fit=crop",
			Description: "A personalized love story website with photos, music, and memories.",
		},
		{
			ID:          "4",
			Name:        "Chocolate Heart Box",
			Price:       900,
			Category:    model.CategoryBudget,
			ImageURL:    "https://i.pinimg.com/736x/bf/de/ec/bfdeec4dc7ff76ab2310f9d48c846957.jpg",
			Description: "Premium Belgian chocolates arranged in a heart-shaped box.",
		},
		{
			ID:          "5",
			Name:        "Teddy Bear & Roses",
			Price:       1200,
			Category:    model.CategoryHampers,
			ImageURL:    "https://i.pinimg.com/736x/ed/49/b6/ed49b6655caaeaaf80c8a082e02aa1fc.jpg",
			Description: "Adorable plush teddy bear with a bouquet of fresh red roses.",
		},
		{
			ID:          "6",
			Name:        "Digital Love Card",
			Price:       200,
			Category:    model.CategoryDigital,
			ImageURL:    "https://i.pinimg.com/736x/89/06/79/8906792d9aec1b30d9e4846108d0b283.jpg",
			Description: "Animated digital greeting card with personalized message and music.",
		},
		{
			ID:          "7",
			Name:        "Scented Candle Set",
			Price:       480,
			Category:    model.CategoryBudget,
			ImageURL:    "https://i.pinimg.com/736x/7a/a1/96/7aa19681df57999da2004d355233b54d.jpg",
			Description: "Set of 3 romantic scented candles - rose, vanilla, and lavender.",
		},
		{
			ID:          "8",
			Name:        "The 'Classic Date' Bottle (Sweet Red)",
			Price:       1200,
			Category:    model.CategoryWines,
			ImageURL:    "https://cms.cdn4vest.com/images/sweet-red-wine-for-beginners.jpg",
			Description: "750ml Sweet Red Wine. Perfect for sharing. Strictly for persons over 18.",
		},
		{
			ID:          "9",
			Name:        "Golden Celebration (Non-Alcoholic)",
			Price:       950,
			Category:    model.CategoryWines,
			ImageURL:    "https://drygoodsdrinks.com/cdn/shop/files/COPENHAGEN-DUO-STUDIO_300x.png",
			Description: "Sparkling Grape Juice. Pop the cork without the alcohol. Classy, bubbly, and delicious.",
		},
		{
			ID:          "10",
			Name:        "The 'Sip & Snack' Combo",
			Price:       1600,
			Category:    model.CategoryWines,
			ImageURL:    "https://media.istockphoto.com/id/1463587147/photo/bottle-of-red-wine.jpg",
			Description: "1 Bottle of Sweet Red Wine + 1 Large Bar of Dark Chocolate. A match made in heaven.",
		},
		{
			ID:          "11",
			Name:        "Service: The 'Ghost' Delivery",
			Price:       150,
			Category:    model.CategoryServices,
			ImageURL:    "https://i.pinimg.com/736x/ghost-delivery.jpg",
			Description: "We deliver your gift anonymously and vanish. Maximum mystery guaranteed.",
		},
		{
			ID:          "12",
			Name:        "Service: The 'Public Flex'",
			Price:       250,
			Category:    model.CategoryServices,
			ImageURL:    "https://i.pinimg.com/736x/public-flex.jpg",
			Description: "Delivery to their workplace or lecture hall at peak hours. Everyone will see it.",
		},
		{
			ID:          "13",
			Name:        "Service: The 'Roommate' Setup",
			Price:       200,
			Category:    model.CategoryServices,
			ImageURL:    "https://i.pinimg.com/736x/roommate-setup.jpg",
			Description: "We coordinate with their roommate to stage the gift in their room before they get back.",
		},
		{
			ID:          "14",
			Name:        "The 'Wine & Dine' Trio",
			Price:       2400,
			Category:    model.CategoryPackages,
			ImageURL:    "https://i.pinimg.com/736x/wine-dine-trio.jpg",
			Description: "Sweet red wine, chocolates, and fresh roses in one romantic package.",
		},
		{
			ID:          "15",
			Name:        "Sweethearts Combo (Choco + Flowers)",
			Price:       1100,
			Category:    model.CategoryPackages,
			ImageURL:    "https://i.pinimg.com/736x/72/4f/d8/724fd8d75620fe91cac36486dd640488.jpg",
			Description: "Simple and sweet. A large Dairy Milk chocolate bar tied together with a beautiful bunch of fresh roses.",
		},
		{
			ID:          "16",
			Name:        "Cuddles & Petals (Bear + Flowers)",
			Price:       1800,
			Category:    model.CategoryPackages,
			ImageURL:    "https://i.pinimg.com/736x/54/63/e5/5463e55f01317109f8eda6b6d72fb9d1.jpg",
			Description: "A cute medium-sized Teddy Bear holding a bouquet of roses. The gift that stays on her bed forever.",
		},
		{
			ID:          "17",
			Name:        "Personalized Keychain",
			Price:       700,
			Category:    model.CategoryKeepsakes,
			ImageURL:    "https://i.pinimg.com/1200x/5d/52/19/5d5219964b77793e6746ffd4661a2f0e.jpg",
			Description: "Carry a piece of them everywhere. Custom engraved with your initials or special date.",
		},
		{
			ID:          "18",
			Name:        "Personalized Postcards",
			Price:       650,
			Category:    model.CategoryKeepsakes,
			ImageURL:    "https://i.pinimg.com/736x/a3/52/7d/a3527dcda36b1c0231c4d7343174b68f.jpg",
			Description: "Turn your favorite memory into a keepsake. Premium cardstock with a custom design.",
		},
	}
}
