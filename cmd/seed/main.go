package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/recipevault/backend/config"
	"github.com/recipevault/backend/internal/database"
	"github.com/recipevault/backend/internal/logger"
	"github.com/recipevault/backend/internal/models"
	"github.com/recipevault/backend/internal/service"
)

type seedRecipe struct {
	Title          string
	IngredientsRaw string
	Instructions   string
	Tags           []string
}

var seedTags = []string{
	"Italian", "Mexican", "Thai", "Vegetarian", "Quick", "Dessert", "Soup", "Chicken",
}

var seedRecipes = []seedRecipe{
	{
		Title: "Weeknight Chicken Stir Fry",
		IngredientsRaw: "1 lb chicken breast, sliced\n2 tablespoons soy sauce\n1 tablespoon sesame oil\n2 cloves garlic, minced\n1 inch ginger, grated\n2 cups broccoli florets\n1 medium red bell pepper, sliced",
		Instructions: "Toss the chicken with half the soy sauce. Stir fry over high heat until browned, then add the garlic, ginger and vegetables. Finish with the remaining soy sauce and sesame oil.",
		Tags:         []string{"Chicken", "Quick"},
	},
	{
		Title: "Classic Margherita Pizza",
		IngredientsRaw: "500 g pizza dough\n1 cup tomato sauce\n8 oz fresh mozzarella\nfresh basil leaves\n2 tablespoons olive oil\nsalt to taste",
		Instructions: "Stretch the dough, spread the sauce and tear the mozzarella over it. Bake as hot as your oven goes until blistered, then top with basil and olive oil.",
		Tags:         []string{"Italian", "Vegetarian"},
	},
	{
		Title: "Tom Kha Gai",
		IngredientsRaw: "4 cups chicken stock\n1 can coconut milk\n1 lb chicken thighs, sliced\n3 slices galangal\n2 stalks lemongrass, bruised\n4 kaffir lime leaves\n2 tablespoons fish sauce\n1 cup mushrooms",
		Instructions: "Simmer the aromatics in the stock for ten minutes. Add the chicken and mushrooms, cook through, then stir in the coconut milk and fish sauce off the heat.",
		Tags:         []string{"Thai", "Soup", "Chicken"},
	},
	{
		Title: "Black Bean Tacos",
		IngredientsRaw: "2 cans black beans, drained\n1 small onion, diced\n2 teaspoons cumin\n8 corn tortillas\n1 cup salsa\n1 avocado, sliced\nfresh cilantro",
		Instructions: "Cook the onion until soft, add the beans and cumin and mash roughly. Warm the tortillas and fill with beans, salsa, avocado and cilantro.",
		Tags:         []string{"Mexican", "Vegetarian", "Quick"},
	},
	{
		Title: "Flourless Chocolate Cake",
		IngredientsRaw: "8 oz dark chocolate\n1/2 cup butter\n3/4 cup sugar\n4 large eggs\n1/4 cup cocoa powder\npinch salt",
		Instructions: "Melt the chocolate and butter together. Whisk in the sugar, then the eggs one at a time, then the cocoa and salt. Bake at 350F for 25 minutes.",
		Tags:         []string{"Dessert"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	zlog, err := logger.Init(cfg.Log.Level)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		zlog.Fatal("opening database", zap.Error(err))
	}
	fts, err := database.Migrate(db)
	if err != nil {
		zlog.Fatal("migrating schema", zap.Error(err))
	}

	ctx := context.Background()

	var existing int64
	if err := db.WithContext(ctx).Model(&models.Recipe{}).Count(&existing).Error; err != nil {
		zlog.Fatal("counting recipes", zap.Error(err))
	}
	if existing > 0 {
		zlog.Info("database already seeded, nothing to do", zap.Int64("recipes", existing))
		return
	}

	tagSvc := service.NewTagService(db, nil)
	recipeSvc := service.NewRecipeService(db, fts, nil)

	tagIDs := make(map[string]int64, len(seedTags))
	for _, name := range seedTags {
		tag, err := tagSvc.FindOrCreate(ctx, name)
		if err != nil {
			zlog.Fatal("creating tag", zap.String("name", name), zap.Error(err))
		}
		tagIDs[name] = tag.ID
	}

	for _, seed := range seedRecipes {
		ids := make([]int64, 0, len(seed.Tags))
		for _, name := range seed.Tags {
			ids = append(ids, tagIDs[name])
		}
		if _, err := recipeSvc.Create(ctx, service.RecipeInput{
			Title:          seed.Title,
			IngredientsRaw: seed.IngredientsRaw,
			Instructions:   seed.Instructions,
			TagIDs:         ids,
		}); err != nil {
			zlog.Fatal("creating recipe", zap.String("title", seed.Title), zap.Error(err))
		}
	}

	zlog.Info("seeded database",
		zap.Int("tags", len(seedTags)),
		zap.Int("recipes", len(seedRecipes)))
}
