package seeders

import (
	"github.com/rennabyte/strumhaus/app/db/fakers"
	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

// SeedersRegister builds a small demo catalog: two categories, a type per
// category, a couple of manufacturers and a handful of products each.
func SeedersRegister(db *gorm.DB) []Seeder {
	guitars := fakers.CategoryFaker(db, "Guitars")
	keyboards := fakers.CategoryFaker(db, "Keyboards")

	electric := fakers.ProductTypeFaker(db, guitars, "Electric Guitars")
	acoustic := fakers.ProductTypeFaker(db, guitars, "Acoustic Guitars")
	synths := fakers.ProductTypeFaker(db, keyboards, "Synthesizers")

	fender := fakers.ManufacturerFaker(db, "Fender")
	yamaha := fakers.ManufacturerFaker(db, "Yamaha")

	seeders := []Seeder{
		{Seeder: guitars},
		{Seeder: keyboards},
		{Seeder: electric},
		{Seeder: acoustic},
		{Seeder: synths},
		{Seeder: fender},
		{Seeder: yamaha},
		{Seeder: fakers.StaffFaker(db)},
		{Seeder: fakers.UserFaker(db)},
	}

	types := []*models.ProductType{electric, acoustic, synths}
	manufacturers := []*models.Manufacturer{fender, yamaha, nil}

	for i, productType := range types {
		for j := 0; j < 3; j++ {
			seeders = append(seeders, Seeder{
				Seeder: fakers.ProductFaker(db, productType, manufacturers[(i+j)%len(manufacturers)]),
			})
		}
	}

	return seeders
}

func DBSeed(db *gorm.DB) error {
	for _, seeder := range SeedersRegister(db) {
		if err := db.Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
