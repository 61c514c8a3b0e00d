// Command seed wipes the clients, programs and enrollments collections
// and loads a small sample data set for local development of the
// dashboard.
package main

import (
	"context"
	"log"
	"time"

	"carelog/health-info-app/internal/config"
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/logger"
	mongorepo "carelog/health-info-app/internal/repository/mongo"
	"carelog/health-info-app/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("FATAL: bad seed date %q: %v", value, err)
	}
	return t
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	appLogger, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer appLogger.Sync()

	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		appLogger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer mongorepo.DisconnectDB(dbClient)
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	// Clear existing data.
	for _, name := range []string{"clients", "programs", "enrollments"} {
		if _, err := appDB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			appLogger.Fatal("failed to clear collection", zap.String("collection", name), zap.Error(err))
		}
	}
	appLogger.Info("data cleared from database")

	if err := mongorepo.EnsureIndexes(ctx, appDB); err != nil {
		appLogger.Fatal("failed to create database indexes", zap.Error(err))
	}

	clientRepo := mongorepo.NewMongoClientRepository(appDB)
	programRepo := mongorepo.NewMongoProgramRepository(appDB)
	enrollmentRepo := mongorepo.NewMongoEnrollmentRepository(appDB)

	clientService := service.NewClientService(clientRepo)
	programService := service.NewProgramService(programRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, clientRepo, programRepo)

	clientInputs := []service.RegisterClientInput{
		{
			FirstName:   "John",
			LastName:    "Doe",
			Gender:      domain.GenderMale,
			DateOfBirth: date("1985-05-15"),
			PhoneNumber: "555-123-4567",
			Address: &domain.Address{
				Street: "123 Main St", City: "Springfield", State: "IL", ZipCode: "62704",
			},
			MedicalHistory: "No significant medical history",
		},
		{
			FirstName:   "Jane",
			LastName:    "Smith",
			Gender:      domain.GenderFemale,
			DateOfBirth: date("1990-02-20"),
			PhoneNumber: "555-987-6543",
			Address: &domain.Address{
				Street: "456 Oak Ave", City: "Springfield", State: "IL", ZipCode: "62701",
			},
			MedicalHistory: "Asthma",
		},
		{
			FirstName:   "Robert",
			LastName:    "Johnson",
			Gender:      domain.GenderMale,
			DateOfBirth: date("1975-11-08"),
			PhoneNumber: "555-456-7890",
			Address: &domain.Address{
				Street: "789 Pine Blvd", City: "Chicago", State: "IL", ZipCode: "60601",
			},
			MedicalHistory: "Hypertension, Type 2 Diabetes",
		},
	}

	endDates := map[string]time.Time{
		"Wellness Workshop":        date("2025-06-12"),
		"Physical Therapy Program": date("2025-08-15"),
		"Nutrition Counseling":     date("2025-12-31"),
	}
	programInputs := []service.CreateProgramInput{
		{
			Name:        "Wellness Workshop",
			Description: "A 6-week program focusing on overall wellness and healthy habits",
			Category:    "Wellness",
			StartDate:   date("2025-05-01"),
		},
		{
			Name:        "Physical Therapy Program",
			Description: "Rehabilitation program for individuals recovering from physical injuries",
			Category:    "Rehabilitation",
			StartDate:   date("2025-05-15"),
		},
		{
			Name:        "Nutrition Counseling",
			Description: "One-on-one nutrition counseling sessions with certified nutritionists",
			Category:    "Nutrition",
			StartDate:   date("2025-04-01"),
		},
	}

	clients := make([]*domain.Client, 0, len(clientInputs))
	for _, input := range clientInputs {
		client, err := clientService.Register(ctx, input)
		if err != nil {
			appLogger.Fatal("failed to seed client", zap.Error(err))
		}
		clients = append(clients, client)
	}
	appLogger.Info("clients inserted", zap.Int("count", len(clients)))

	programs := make([]*domain.Program, 0, len(programInputs))
	for _, input := range programInputs {
		end := endDates[input.Name]
		input.EndDate = &end
		program, err := programService.Create(ctx, input)
		if err != nil {
			appLogger.Fatal("failed to seed program", zap.Error(err))
		}
		programs = append(programs, program)
	}
	appLogger.Info("programs inserted", zap.Int("count", len(programs)))

	// Enroll each client in one program.
	enrolled := 0
	for i, client := range clients {
		program := programs[i%len(programs)]
		if _, err := enrollmentService.Enroll(ctx, client.ID, program.ID, "Seeded enrollment"); err != nil {
			appLogger.Fatal("failed to seed enrollment", zap.Error(err))
		}
		enrolled++
	}
	appLogger.Info("enrollments inserted", zap.Int("count", enrolled))
}
