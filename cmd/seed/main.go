// Command seed wipes the products collection and loads the sample jewelry
// catalog.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"sparkle/internal/config"
	"sparkle/internal/database"
	"sparkle/internal/models"
)

var products = []models.Product{
	{
		Name:        "Diamond Eternity Necklace",
		Description: "Timeless diamond necklace for everyday elegance.",
		Price:       299.99,
		Category:    "Necklace",
		Image:       "https://cdn.shopify.com/s/files/1/0364/7253/products/Web_IMG_4334-Edit_706x918_crop_center.jpg?v=1665499242",
		Stock:       15,
		Featured:    true,
	},
	{
		Name:        "Gold Hoop Earrings",
		Description: "Classic gold hoops with subtle sparkle.",
		Price:       149.50,
		Category:    "Earrings",
		Image:       "https://i.pinimg.com/originals/a4/53/f4/a453f4a4d373f2c4d83d9124db904512.jpg",
		Stock:       20,
		Featured:    true,
	},
	{
		Name:        "Ruby Solitaire Ring",
		Description: "Vibrant ruby ring symbolizing passion and luxury.",
		Price:       450.00,
		Category:    "Ring",
		Image:       "https://a.1stdibscdn.com/82-carat-natural-vivid-bright-ruby-solitaire-ring-and-band-14-karat-for-sale-picture-3/j_11863/1537999749459/2284_6_master.JPG?width=768",
		Stock:       8,
		Featured:    true,
	},
	{
		Name:        "Pearl Tennis Bracelet",
		Description: "Elegant pearl bracelet for sophisticated wrists.",
		Price:       220.75,
		Category:    "Bracelet",
		Image:       "https://static.helloice.com/productimages/2024/6/HLB10048/1797485039110459392.jpeg",
		Stock:       12,
		Featured:    true,
	},
	{
		Name:        "Sapphire Drop Pendant",
		Description: "Deep blue sapphire pendant on gold chain.",
		Price:       380.00,
		Category:    "Pendant",
		Image:       "https://a.1stdibscdn.com/angara-gia-certified-natural-sapphire-yellow-gold-pendant-necklace-for-sale/22569652/j_178830521670504782464/j_17883052_1670504782793_bg_processed.jpg",
		Stock:       10,
		Featured:    true,
	},
	{
		Name:        "Emerald Stud Earrings",
		Description: "Luxurious emerald studs for a pop of green.",
		Price:       280.25,
		Category:    "Earrings",
		Image:       "https://i.etsystatic.com/23490555/r/il/c71f7f/2886094284/il_fullxfull.2886094284_pvmy.jpg",
		Stock:       18,
		Featured:    false,
	},
	{
		Name:        "Silver Anklet",
		Description: "Delicate silver anklet with charm details.",
		Price:       85.00,
		Category:    "Bracelet",
		Image:       "https://m.media-amazon.com/images/S/aplus-media-library-service-media/fe3c1bea-d810-4949-a270-6d44d00c5fd0.__CR0,1379,4672,1915_PT0_SX1464_V1___.jpg",
		Stock:       25,
		Featured:    false,
	},
}

func main() {
	log := logrus.New()
	cfg := config.Load(log)

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB, log)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	col := db.Collection("products")
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("clearing products: %v", err)
	}
	log.Info("Existing products cleared")

	docs := make([]interface{}, 0, len(products))
	now := time.Now().UTC()
	for i := range products {
		products[i].CreatedAt = now
		docs = append(docs, products[i])
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		log.Fatalf("seeding products: %v", err)
	}
	log.Infof("Seeding successful! Added %d products.", len(products))
}
