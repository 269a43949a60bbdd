package validators

import "go.mongodb.org/mongo-driver/bson"

var TenantValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"domain",
			"settings",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"domain": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 253,
			},

			"settings": bson.M{
				"bsonType": "object",
				"required": []string{"max_booking_hours", "buffer_minutes"},
				"properties": bson.M{
					"max_booking_hours": bson.M{
						"bsonType": []string{"double", "int"},
						"minimum":  0.5,
						"maximum":  24,
					},
					"buffer_minutes": bson.M{
						"bsonType": "int",
						"minimum":  0,
						"maximum":  240,
					},
				},
			},
		},
	},
}
