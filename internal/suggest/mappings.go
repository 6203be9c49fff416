package suggest

// tagMappings maps a lowercase keyword to the tag names it suggests. The map
// is read-only configuration data, built once at process start; Suggest never
// mutates it.
var tagMappings = map[string][]string{
	// Proteins
	"chicken":    {"Chicken", "Poultry"},
	"turkey":     {"Turkey", "Poultry"},
	"beef":       {"Beef"},
	"steak":      {"Beef"},
	"pork":       {"Pork"},
	"bacon":      {"Pork", "Breakfast"},
	"sausage":    {"Pork"},
	"lamb":       {"Lamb"},
	"salmon":     {"Fish", "Seafood"},
	"tuna":       {"Fish", "Seafood"},
	"cod":        {"Fish", "Seafood"},
	"shrimp":     {"Seafood"},
	"crab":       {"Seafood"},
	"mussels":    {"Seafood"},
	"tofu":       {"Tofu", "Vegetarian"},
	"tempeh":     {"Vegetarian"},
	"lentil":     {"Lentils", "Vegetarian"},
	"chickpea":   {"Beans", "Vegetarian"},
	"black bean": {"Beans"},
	"egg":        {"Eggs"},

	// Dishes
	"soup":      {"Soup"},
	"stew":      {"Stew", "Comfort Food"},
	"chili":     {"Chili", "Comfort Food"},
	"salad":     {"Salad"},
	"sandwich":  {"Sandwich"},
	"burger":    {"Burger"},
	"pizza":     {"Pizza"},
	"pasta":     {"Pasta"},
	"spaghetti": {"Pasta"},
	"lasagna":   {"Pasta", "Comfort Food"},
	"noodle":    {"Noodles"},
	"rice":      {"Rice"},
	"risotto":   {"Rice", "Italian"},
	"taco":      {"Tacos", "Mexican"},
	"burrito":   {"Mexican"},
	"quesadilla": {"Mexican"},
	"curry":     {"Curry"},
	"stir fry":  {"Stir Fry", "Asian"},
	"stir-fry":  {"Stir Fry", "Asian"},
	"casserole": {"Casserole", "Comfort Food"},
	"pie":       {"Pie"},
	"bread":     {"Bread", "Baking"},
	"muffin":    {"Baking", "Breakfast"},
	"cookie":    {"Cookies", "Dessert", "Baking"},
	"cake":      {"Cake", "Dessert", "Baking"},
	"brownie":   {"Dessert", "Baking"},
	"pancake":   {"Breakfast"},
	"waffle":    {"Breakfast"},
	"oatmeal":   {"Breakfast", "Healthy"},
	"smoothie":  {"Drinks", "Healthy"},

	// Cuisines
	"parmesan":   {"Italian"},
	"mozzarella": {"Italian"},
	"basil":      {"Italian"},
	"soy sauce":  {"Asian"},
	"sesame":     {"Asian"},
	"ginger":     {"Asian"},
	"teriyaki":   {"Asian", "Japanese"},
	"miso":       {"Japanese"},
	"kimchi":     {"Korean"},
	"gochujang":  {"Korean"},
	"salsa":      {"Mexican"},
	"cilantro":   {"Mexican"},
	"cumin":      {"Mexican", "Indian"},
	"garam masala": {"Indian"},
	"turmeric":   {"Indian"},
	"feta":       {"Greek", "Mediterranean"},
	"olive":      {"Mediterranean"},
	"hummus":     {"Mediterranean"},
	"paprika":    {"Hungarian"},
	"baguette":   {"French"},

	// Methods
	"grill":       {"Grilled"},
	"grilled":     {"Grilled"},
	"roast":       {"Roasted"},
	"roasted":     {"Roasted"},
	"bake":        {"Baking"},
	"slow cooker": {"Slow Cooker"},
	"crockpot":    {"Slow Cooker"},
	"instant pot": {"Instant Pot"},
	"air fryer":   {"Air Fryer"},
	"no-bake":     {"No Bake", "Dessert"},
	"one pot":     {"One Pot"},
	"sheet pan":   {"Sheet Pan"},
	"marinate":    {"Grilled"},

	// Dietary and occasion
	"vegan":       {"Vegan"},
	"vegetarian":  {"Vegetarian"},
	"gluten-free": {"Gluten Free"},
	"gluten free": {"Gluten Free"},
	"dairy-free":  {"Dairy Free"},
	"keto":        {"Keto", "Low Carb"},
	"low carb":    {"Low Carb"},
	"healthy":     {"Healthy"},
	"quick":       {"Quick"},
	"30 minute":   {"Quick", "Weeknight"},
	"weeknight":   {"Weeknight"},
	"holiday":     {"Holiday"},
	"thanksgiving": {"Holiday"},
	"christmas":   {"Holiday"},
	"party":       {"Party"},
	"appetizer":   {"Appetizer"},
	"side dish":   {"Side Dish"},
	"dessert":     {"Dessert"},
	"breakfast":   {"Breakfast"},
	"brunch":      {"Breakfast", "Brunch"},
	"lunch":       {"Lunch"},
	"dinner":      {"Dinner"},
	"snack":       {"Snack"},
	"chocolate":   {"Chocolate", "Dessert"},
	"caramel":     {"Dessert"},
	"vanilla":     {"Dessert"},
	"cinnamon":    {"Baking"},
	"lemon":       {"Citrus"},
	"lime":        {"Citrus"},
	"avocado":     {"Healthy"},
	"quinoa":      {"Healthy", "Grains"},
	"kale":        {"Healthy"},
	"spinach":     {"Healthy"},
	"mushroom":    {"Mushrooms"},
	"potato":      {"Potatoes"},
	"sweet potato": {"Sweet Potatoes"},
	"corn":        {"Corn"},
	"apple":       {"Apples"},
	"banana":      {"Bananas"},
	"berry":       {"Berries"},
	"strawberry":  {"Berries"},
	"blueberry":   {"Berries"},
	"pumpkin":     {"Pumpkin", "Fall"},
	"garlic":      {"Garlic"},
	"cheese":      {"Cheese"},
	"coconut milk": {"Curry"},
	"wine":        {"Wine"},
}
