package kb

import "veggiemenu/internal/models"

// defaultIngredients and defaultDishes seed the embedded knowledge base.
// Every entry here is indexed into the vector store at startup; the keyword
// matcher uses only defaultKeywords.
var defaultIngredients = []models.KBEntry{
	{Name: "tofu", IsVegetarian: true, Category: "protein", Description: "Soybean curd, plant-based protein source", Notes: "Vegan protein alternative", Type: "ingredient"},
	{Name: "tempeh", IsVegetarian: true, Category: "protein", Description: "Fermented soybean product, Indonesian origin", Notes: "High protein vegan option", Type: "ingredient"},
	{Name: "seitan", IsVegetarian: true, Category: "protein", Description: "Wheat gluten meat substitute", Notes: "Also called wheat meat", Type: "ingredient"},
	{Name: "paneer", IsVegetarian: true, Category: "dairy", Description: "Indian fresh cheese, non-melting", Notes: "Vegetarian but not vegan", Type: "ingredient"},
	{Name: "halloumi", IsVegetarian: true, Category: "dairy", Description: "Cypriot cheese that can be grilled", Notes: "Check for animal rennet", Type: "ingredient"},
	{Name: "mushroom", IsVegetarian: true, Category: "vegetable", Description: "Fungi, various varieties including portobello, shiitake", Notes: "Common meat substitute", Type: "ingredient"},
	{Name: "lentils", IsVegetarian: true, Category: "legume", Description: "Lens-shaped legumes, high protein", Notes: "Red, green, brown varieties", Type: "ingredient"},
	{Name: "chickpeas", IsVegetarian: true, Category: "legume", Description: "Garbanzo beans, used in hummus and falafel", Notes: "High fiber and protein", Type: "ingredient"},
	{Name: "black beans", IsVegetarian: true, Category: "legume", Description: "Common in Latin American cuisine", Notes: "Good protein source", Type: "ingredient"},
	{Name: "quinoa", IsVegetarian: true, Category: "grain", Description: "Protein-rich seed often used as grain", Notes: "Complete protein", Type: "ingredient"},
	{Name: "falafel", IsVegetarian: true, Category: "prepared", Description: "Fried chickpea or fava bean balls", Notes: "Middle Eastern vegetarian staple", Type: "ingredient"},
	{Name: "hummus", IsVegetarian: true, Category: "prepared", Description: "Chickpea and tahini spread", Notes: "Vegan dip", Type: "ingredient"},
	{Name: "cheese", IsVegetarian: true, Category: "dairy", Description: "Dairy product from milk", Notes: "Some use animal rennet - check if strict", Type: "ingredient"},
	{Name: "eggs", IsVegetarian: true, Category: "dairy", Description: "Chicken eggs, used in many dishes", Notes: "Vegetarian but not vegan", Type: "ingredient"},
	{Name: "butter", IsVegetarian: true, Category: "dairy", Description: "Dairy fat product", Notes: "Vegetarian but not vegan", Type: "ingredient"},
	{Name: "jackfruit", IsVegetarian: true, Category: "fruit", Description: "Tropical fruit used as meat substitute when unripe", Notes: "Shredded texture similar to pulled pork", Type: "ingredient"},
	{Name: "eggplant", IsVegetarian: true, Category: "vegetable", Description: "Aubergine, used in many cuisines", Notes: "Meaty texture when cooked", Type: "ingredient"},
	{Name: "cauliflower", IsVegetarian: true, Category: "vegetable", Description: "Cruciferous vegetable, versatile", Notes: "Popular meat substitute", Type: "ingredient"},
	{Name: "zucchini", IsVegetarian: true, Category: "vegetable", Description: "Summer squash, courgette", Notes: "Used in vegetarian dishes", Type: "ingredient"},
	{Name: "spinach", IsVegetarian: true, Category: "vegetable", Description: "Leafy green vegetable", Notes: "High in iron", Type: "ingredient"},
	{Name: "chicken", IsVegetarian: false, Category: "meat", Description: "Poultry meat", Notes: "Common meat, not vegetarian", Type: "ingredient"},
	{Name: "beef", IsVegetarian: false, Category: "meat", Description: "Cattle meat", Notes: "Red meat, not vegetarian", Type: "ingredient"},
	{Name: "pork", IsVegetarian: false, Category: "meat", Description: "Pig meat", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "bacon", IsVegetarian: false, Category: "meat", Description: "Cured pork belly or back", Notes: "Often hidden in dishes", Type: "ingredient"},
	{Name: "ham", IsVegetarian: false, Category: "meat", Description: "Cured pork leg", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "lamb", IsVegetarian: false, Category: "meat", Description: "Young sheep meat", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "duck", IsVegetarian: false, Category: "meat", Description: "Waterfowl meat", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "turkey", IsVegetarian: false, Category: "meat", Description: "Poultry meat", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "fish", IsVegetarian: false, Category: "seafood", Description: "Various fish species", Notes: "Not vegetarian (pescatarian only)", Type: "ingredient"},
	{Name: "salmon", IsVegetarian: false, Category: "seafood", Description: "Fatty fish, pink flesh", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "tuna", IsVegetarian: false, Category: "seafood", Description: "Large ocean fish", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "shrimp", IsVegetarian: false, Category: "seafood", Description: "Crustacean shellfish", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "crab", IsVegetarian: false, Category: "seafood", Description: "Crustacean shellfish", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "lobster", IsVegetarian: false, Category: "seafood", Description: "Large crustacean", Notes: "Not vegetarian", Type: "ingredient"},
	{Name: "anchovies", IsVegetarian: false, Category: "seafood", Description: "Small oily fish, often in sauces", Notes: "Hidden in Caesar dressing and Worcestershire", Type: "ingredient"},
	{Name: "fish sauce", IsVegetarian: false, Category: "condiment", Description: "Fermented fish condiment", Notes: "Common in Thai/Vietnamese cuisine, hidden ingredient", Type: "ingredient"},
	{Name: "oyster sauce", IsVegetarian: false, Category: "condiment", Description: "Sauce made from oyster extracts", Notes: "Common in Asian stir-fries", Type: "ingredient"},
	{Name: "gelatin", IsVegetarian: false, Category: "additive", Description: "Derived from animal collagen", Notes: "In desserts, gummies, some yogurts", Type: "ingredient"},
	{Name: "lard", IsVegetarian: false, Category: "fat", Description: "Rendered pig fat", Notes: "Used in some pastries and refried beans", Type: "ingredient"},
	{Name: "bone broth", IsVegetarian: false, Category: "liquid", Description: "Stock made from animal bones", Notes: "Base for many soups", Type: "ingredient"},
	{Name: "worcestershire sauce", IsVegetarian: false, Category: "condiment", Description: "Fermented sauce containing anchovies", Notes: "Hidden in many dishes", Type: "ingredient"},
}

var defaultDishes = []models.KBEntry{
	{Name: "margherita pizza", IsVegetarian: true, Category: "italian", Description: "Pizza with tomato, mozzarella, and basil", Notes: "Classic vegetarian option", Type: "dish"},
	{Name: "vegetable stir fry", IsVegetarian: true, Category: "asian", Description: "Mixed vegetables cooked in wok", Notes: "Check for oyster sauce", Type: "dish"},
	{Name: "greek salad", IsVegetarian: true, Category: "salad", Description: "Tomatoes, cucumber, olives, feta cheese", Notes: "Traditional vegetarian salad", Type: "dish"},
	{Name: "caprese salad", IsVegetarian: true, Category: "salad", Description: "Tomatoes, mozzarella, basil", Notes: "Italian vegetarian starter", Type: "dish"},
	{Name: "veggie burger", IsVegetarian: true, Category: "american", Description: "Plant-based burger patty", Notes: "Check if bun contains animal products", Type: "dish"},
	{Name: "mushroom risotto", IsVegetarian: true, Category: "italian", Description: "Creamy rice dish with mushrooms", Notes: "Check stock is vegetable-based", Type: "dish"},
	{Name: "palak paneer", IsVegetarian: true, Category: "indian", Description: "Spinach curry with paneer cheese", Notes: "Classic Indian vegetarian", Type: "dish"},
	{Name: "dal", IsVegetarian: true, Category: "indian", Description: "Lentil curry/soup", Notes: "Vegetarian protein staple", Type: "dish"},
	{Name: "falafel wrap", IsVegetarian: true, Category: "middle_eastern", Description: "Falafel in pita with vegetables", Notes: "Vegan option", Type: "dish"},
	{Name: "pasta primavera", IsVegetarian: true, Category: "italian", Description: "Pasta with spring vegetables", Notes: "Usually vegetarian", Type: "dish"},
	{Name: "cheese quesadilla", IsVegetarian: true, Category: "mexican", Description: "Tortilla with melted cheese", Notes: "Vegetarian", Type: "dish"},
	{Name: "vegetable curry", IsVegetarian: true, Category: "indian", Description: "Mixed vegetables in curry sauce", Notes: "Vegetarian option", Type: "dish"},
	{Name: "garden salad", IsVegetarian: true, Category: "salad", Description: "Mixed greens with vegetables", Notes: "Check dressing ingredients", Type: "dish"},
	{Name: "caesar salad", IsVegetarian: false, Category: "salad", Description: "Romaine lettuce with caesar dressing", Notes: "Traditional dressing contains anchovies", Type: "dish"},
	{Name: "pad thai", IsVegetarian: false, Category: "thai", Description: "Rice noodles with tamarind sauce", Notes: "Usually contains fish sauce and dried shrimp", Type: "dish"},
	{Name: "chicken wings", IsVegetarian: false, Category: "american", Description: "Fried or baked chicken wings", Notes: "Meat dish", Type: "dish"},
	{Name: "beef burger", IsVegetarian: false, Category: "american", Description: "Ground beef patty in bun", Notes: "Meat dish", Type: "dish"},
	{Name: "fish and chips", IsVegetarian: false, Category: "british", Description: "Battered fish with fries", Notes: "Seafood dish", Type: "dish"},
	{Name: "pepperoni pizza", IsVegetarian: false, Category: "italian", Description: "Pizza with pepperoni (cured pork/beef)", Notes: "Contains meat", Type: "dish"},
	{Name: "tom yum soup", IsVegetarian: false, Category: "thai", Description: "Hot and sour Thai soup", Notes: "Usually contains shrimp and fish sauce", Type: "dish"},
	{Name: "pho", IsVegetarian: false, Category: "vietnamese", Description: "Vietnamese noodle soup", Notes: "Usually beef or chicken broth base", Type: "dish"},
	{Name: "ramen", IsVegetarian: false, Category: "japanese", Description: "Japanese noodle soup", Notes: "Usually pork or chicken broth, contains chashu", Type: "dish"},
	{Name: "sushi roll", IsVegetarian: false, Category: "japanese", Description: "Rice and fish wrapped in seaweed", Notes: "Contains raw fish unless specified vegetable", Type: "dish"},
	{Name: "carbonara", IsVegetarian: false, Category: "italian", Description: "Pasta with egg, cheese, and pancetta", Notes: "Contains pork (pancetta/guanciale)", Type: "dish"},
	{Name: "french onion soup", IsVegetarian: false, Category: "french", Description: "Caramelized onion soup with cheese", Notes: "Usually made with beef broth", Type: "dish"},
}

var defaultKeywords = models.KeywordSets{
	Positive: []string{
		"vegetarian", "veggie", "vegan", "plant-based", "meatless",
		"meat-free", "tofu", "tempeh", "seitan", "falafel", "hummus",
		"🌱", "🥬", "🥕",
	},
	Markers: []string{
		"(v)", "[v]", "(vg)", "[vg]", "(vegan)", "(vegetarian)",
	},
	Negative: []string{
		"chicken", "beef", "pork", "lamb", "duck", "turkey",
		"fish", "salmon", "tuna", "shrimp", "crab", "lobster",
		"bacon", "ham", "sausage", "pepperoni", "prosciutto",
		"anchovy", "anchovies", "oyster", "mussel", "clam",
		"caesar",
	},
}

func defaultKnowledgeBase() models.KnowledgeBase {
	return models.KnowledgeBase{
		Ingredients: append([]models.KBEntry(nil), defaultIngredients...),
		Dishes:      append([]models.KBEntry(nil), defaultDishes...),
		Keywords:    defaultKeywords,
	}
}
