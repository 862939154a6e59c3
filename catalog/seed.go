package catalog

import "github.com/Modave-Commerce/modave-storefront-backend/models"

// The static catalog, mirroring the storefront's product data file.
// Seed order is the canonical catalog order.
var seedProducts = []models.Product{
	{
		ID:       1,
		Name:     "Elegant Silk Blouse",
		Price:    129.99,
		Category: models.CategoryWomen, Subcategory: "tops",
		Image: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop",
			"https://images.unsplash.com/photo-1583496661160-fb5886a13d77?w=500&h=600&fit=crop",
		},
		Description: "Luxurious silk blouse perfect for both office and evening wear. Features a relaxed fit with elegant draping.",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Ivory", "Black", "Navy"},
		InStock:     true, Featured: true,
		Rating: 4.8, Reviews: 124,
	},
	{
		ID:       2,
		Name:     "Classic Denim Jacket",
		Price:    89.99,
		Category: models.CategoryUnisex, Subcategory: "outerwear",
		Image: "https://images.unsplash.com/photo-1544022613-e87ca75a784a?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1544022613-e87ca75a784a?w=500&h=600&fit=crop",
			"https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?w=500&h=600&fit=crop",
		},
		Description: "Timeless denim jacket with a modern cut. Made from premium cotton denim with subtle distressing.",
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Classic Blue", "Black", "Light Wash"},
		InStock:     true, Featured: true,
		Rating: 4.6, Reviews: 89,
	},
	{
		ID:       3,
		Name:     "Flowing Maxi Dress",
		Price:    159.99,
		Category: models.CategoryWomen, Subcategory: "dresses",
		Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500&h=600&fit=crop",
			"https://images.unsplash.com/photo-1583744946564-b52ac1c389c8?w=500&h=600&fit=crop",
		},
		Description: "Ethereal maxi dress with delicate floral print. Perfect for summer occasions and beach getaways.",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Floral Print", "Solid Navy", "Burgundy"},
		InStock:     true, Featured: false,
		Rating: 4.9, Reviews: 203,
	},
	{
		ID:       4,
		Name:     "Tailored Blazer",
		Price:    199.99,
		Category: models.CategoryWomen, Subcategory: "outerwear",
		Image: "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500&h=600&fit=crop",
			"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop",
		},
		Description: "Sharp, professional blazer with a modern silhouette. Crafted from premium wool blend fabric.",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Black", "Navy", "Charcoal", "Camel"},
		InStock:     true, Featured: true,
		Rating: 4.7, Reviews: 156,
	},
	{
		ID:       5,
		Name:     "Casual Linen Pants",
		Price:    79.99,
		Category: models.CategoryWomen, Subcategory: "bottoms",
		Image: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=600&fit=crop",
		},
		Description: "Comfortable linen pants perfect for casual summer days. Features a relaxed fit and breathable fabric.",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Natural", "White", "Navy", "Olive"},
		InStock:     true, Featured: false,
		Rating: 4.4, Reviews: 67,
	},
	{
		ID:       6,
		Name:     "Luxury Cashmere Sweater",
		Price:    249.99,
		Category: models.CategoryWomen, Subcategory: "knitwear",
		Image: "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=500&h=600&fit=crop",
			"https://images.unsplash.com/photo-1583496661160-fb5886a13d77?w=500&h=600&fit=crop",
		},
		Description: "Ultra-soft cashmere sweater in a classic crew neck style. Perfect for layering or wearing alone.",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Cream", "Grey", "Black", "Dusty Pink"},
		InStock:     true, Featured: true,
		Rating: 4.9, Reviews: 89,
	},
	{
		ID:       7,
		Name:     "Designer Handbag",
		Price:    299.99,
		Category: models.CategoryAccessories, Subcategory: "bags",
		Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=600&fit=crop",
		},
		Description: "Sophisticated leather handbag with gold hardware. Features multiple compartments and adjustable strap.",
		Sizes:       []string{"One Size"},
		Colors:      []string{"Black", "Brown", "Burgundy"},
		InStock:     true, Featured: true,
		Rating: 4.8, Reviews: 145,
	},
	{
		ID:       8,
		Name:     "Statement Earrings",
		Price:    49.99,
		Category: models.CategoryAccessories, Subcategory: "jewelry",
		Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500&h=600&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500&h=600&fit=crop",
		},
		Description: "Bold statement earrings featuring geometric design. Perfect for adding glamour to any outfit.",
		Sizes:       []string{"One Size"},
		Colors:      []string{"Gold", "Silver", "Rose Gold"},
		InStock:     true, Featured: false,
		Rating: 4.5, Reviews: 78,
	},
}

var seedCategories = []models.Category{
	{ID: "women", Name: "Women", Subcategories: []string{"tops", "bottoms", "dresses", "outerwear", "knitwear"}},
	{ID: "men", Name: "Men", Subcategories: []string{"shirts", "pants", "outerwear", "knitwear"}},
	{ID: "accessories", Name: "Accessories", Subcategories: []string{"bags", "jewelry", "shoes", "scarves"}},
	{ID: "unisex", Name: "Unisex", Subcategories: []string{"outerwear", "accessories"}},
}
