package validators

import "go.mongodb.org/mongo-driver/bson"

var PaymentValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"transactionId", "amount"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"bookingId": bson.M{
				"bsonType":  "string",
				"maxLength": 24,
			},

			"transactionId": bson.M{
				"bsonType":  "string",
				"minLength": 4,
				"maxLength": 100,
			},

			"amount": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"patientEmail": bson.M{
				"bsonType":  "string",
				"maxLength": 254,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
