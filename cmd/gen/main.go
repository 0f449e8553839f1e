package main

import (
	"homepros/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ListingModel{},
		model.ServiceCategoryModel{},
		model.ListingServiceModel{},
		model.ListingPhotoModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
