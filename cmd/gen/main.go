package main

import (
	"hawker/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ShopModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.NotificationModel{},
		model.ShopBroadcastModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
