// Command ingest loads a questionnaire catalog workbook (JSON) into
// MongoDB, validating every form's rule graph before anything is written.
// A workbook that fails validation leaves the stored catalog untouched.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/drivers/database"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/app/services/core/catalog"
	"codexrfa-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type workbook struct {
	Languages []models.Language `json:"languages"`
	Forms     []models.Form     `json:"forms"`
	Questions []models.Question `json:"questions"`
	Options   []models.Option   `json:"options"`
	RedFlags  []models.RedFlag  `json:"red_flags"`
}

func main() {
	path := flag.String("workbook", "catalog.json", "path to the catalog workbook JSON")
	flag.Parse()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Failed to read workbook: %v", err)
	}

	var wb workbook
	if err := json.Unmarshal(raw, &wb); err != nil {
		log.Fatalf("Failed to parse workbook: %v", err)
	}

	validateWorkbook(&wb)

	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	ensureIndexes(ctx, db)

	for _, language := range wb.Languages {
		upsert(ctx, db.Collection(constvars.MongoCollectionLanguages), bson.M{"code": language.Code}, language)
	}
	for _, form := range wb.Forms {
		upsert(ctx, db.Collection(constvars.MongoCollectionForms), bson.M{"form_id": form.ID}, form)
	}
	for _, question := range wb.Questions {
		upsert(ctx, db.Collection(constvars.MongoCollectionQuestions), bson.M{"question_id": question.ID}, question)
	}
	for _, option := range wb.Options {
		upsert(ctx, db.Collection(constvars.MongoCollectionOptions), bson.M{"option_id": option.ID}, option)
	}
	for _, flag := range wb.RedFlags {
		upsert(ctx, db.Collection(constvars.MongoCollectionRedFlags), bson.M{"red_flag_id": flag.ID}, flag)
	}

	log.Printf("Ingested %d forms, %d questions, %d options, %d red flags",
		len(wb.Forms), len(wb.Questions), len(wb.Options), len(wb.RedFlags))
}

// validateWorkbook assembles every form into a snapshot in memory. This
// runs the full integrity checks (root, default successors, rule targets,
// option ownership, acyclicity) before any write happens.
func validateWorkbook(wb *workbook) {
	for i := range wb.Forms {
		form := &wb.Forms[i]

		var questions []models.Question
		questionIDs := map[string]bool{}
		for _, question := range wb.Questions {
			if question.FormID == form.ID {
				questions = append(questions, question)
				questionIDs[question.ID] = true
			}
		}
		var formOptions []models.Option
		for _, option := range wb.Options {
			if questionIDs[option.QuestionID] {
				formOptions = append(formOptions, option)
			}
		}
		var flags []models.RedFlag
		for _, flag := range wb.RedFlags {
			if flag.FormID == form.ID {
				flags = append(flags, flag)
			}
		}

		if _, err := catalog.BuildSnapshot(form, questions, formOptions, flags); err != nil {
			log.Fatalf("Workbook validation failed for form %q: %v", form.ID, err)
		}
		log.Printf("Validated form %q v%d (%d questions, %d red flags)",
			form.ID, form.Version, len(questions), len(flags))
	}
}

func upsert(ctx context.Context, collection *mongo.Collection, filter bson.M, document interface{}) {
	_, err := collection.ReplaceOne(ctx, filter, document, options.Replace().SetUpsert(true))
	if err != nil {
		log.Fatalf("Failed to upsert into %s: %v", collection.Name(), err)
	}
}

// ensureIndexes creates the lookup and uniqueness indexes the service
// relies on, most importantly the unique record_id on submissions that
// backs the regenerate-on-collision insert.
func ensureIndexes(ctx context.Context, db *mongo.Database) {
	indexes := map[string]mongo.IndexModel{
		constvars.MongoCollectionSubmissions: {
			Keys:    bson.D{{Key: "record_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		constvars.MongoCollectionDoctors: {
			Keys:    bson.D{{Key: "shareable_slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		constvars.MongoCollectionQuestions: {
			Keys: bson.D{{Key: "form_id", Value: 1}, {Key: "sequence_no", Value: 1}},
		},
		constvars.MongoCollectionOptions: {
			Keys: bson.D{{Key: "question_id", Value: 1}, {Key: "sequence_no", Value: 1}},
		},
		constvars.MongoCollectionRedFlags: {
			Keys: bson.D{{Key: "form_id", Value: 1}},
		},
	}

	for name, model := range indexes {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			log.Fatalf("Failed to create index on %s: %v", name, err)
		}
	}
}
