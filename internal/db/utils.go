package db

import "go.mongodb.org/mongo-driver/bson"

func getSort(by string) bson.D {
	field := "title"
	order := 1
	switch by {
	case "", "title":
	case "created":
		field = "createdat"
		order = -1
	case "rating":
		field = "rating"
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}
