package repository

import "go.mongodb.org/mongo-driver/mongo/options"

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
