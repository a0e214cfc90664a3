// Package main fills a store with the default exercise catalogue and random training
// history for one user, then opens a redis session for that user and prints its token.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"time"

	"github.com/2beens/gymstats/internal/auth"
	"github.com/2beens/gymstats/internal/config"
	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/storage"
	"github.com/2beens/gymstats/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redis/v8"
	"github.com/sethvargo/go-envconfig"
	log "github.com/sirupsen/logrus"
)

var catalogue = []repo.Exercise{
	{Name: "Bench Press", MuscleGroup: repo.MuscleGroupChest},
	{Name: "Incline Dumbbell Press", MuscleGroup: repo.MuscleGroupChest},
	{Name: "Pull Up", MuscleGroup: repo.MuscleGroupBack},
	{Name: "Barbell Row", MuscleGroup: repo.MuscleGroupBack},
	{Name: "Deadlift", MuscleGroup: repo.MuscleGroupLowerBack},
	{Name: "Overhead Press", MuscleGroup: repo.MuscleGroupShoulders},
	{Name: "Barbell Curl", MuscleGroup: repo.MuscleGroupBiceps},
	{Name: "Triceps Pushdown", MuscleGroup: repo.MuscleGroupTriceps},
	{Name: "Squat", MuscleGroup: repo.MuscleGroupQuadriceps},
	{Name: "Romanian Deadlift", MuscleGroup: repo.MuscleGroupHamstrings},
	{Name: "Hip Thrust", MuscleGroup: repo.MuscleGroupGlutes},
	{Name: "Standing Calf Raise", MuscleGroup: repo.MuscleGroupCalves},
	{Name: "Plank", MuscleGroup: repo.MuscleGroupAbs},
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.String("user", "dev-user", "owner of the generated data")
	admin := flag.Bool("admin", false, "open an admin session")
	sessionsCount := flag.Int("sessions", 30, "number of training sessions to generate")
	seed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.Store == config.StoreMemory {
		log.Fatalln("seeding the memory store is pointless, pick postgres or mongo")
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx, envconfig.OsLookuper())
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	backend, err := storage.Open(ctx, storage.OpenParams{
		Config:        cfg,
		PostgresPass:  secrets.PostgresPassword,
		MongoURI:      secrets.MongoURI,
		RunMigrations: true,
	})
	if err != nil {
		log.Fatalf("open %s store: %s", cfg.Store, err)
	}
	defer func() {
		if err := backend.Close(ctx); err != nil {
			log.Errorf("close store: %s", err)
		}
	}()

	faker := gofakeit.New(*seed)

	exercises, err := seedExercises(ctx, backend.Store)
	if err != nil {
		log.Fatalf("seed exercises: %s", err)
	}
	log.Infof("added %d exercises", len(exercises))

	added, err := seedSessions(ctx, backend.Store, faker, *userID, exercises, *sessionsCount)
	if err != nil {
		log.Fatalf("seed sessions: %s", err)
	}
	log.Infof("added %d sessions for %s", added, *userID)

	if err := seedBodyMetrics(ctx, backend.Store, faker, *userID, *sessionsCount/3); err != nil {
		log.Fatalf("seed body metrics: %s", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis: %s", err)
		}
	}()

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	token, err := authService.Login(ctx, auth.Principal{UserID: *userID, Admin: *admin}, time.Now())
	if err != nil {
		log.Fatalf("login: %s", err)
	}
	fmt.Println(token)
}

func seedExercises(ctx context.Context, store storage.Store) ([]repo.Exercise, error) {
	added := make([]repo.Exercise, 0, len(catalogue))
	for _, ex := range catalogue {
		ex.IsDefault = true
		stored, err := store.AddExercise(ctx, ex)
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", ex.Name, err)
		}
		added = append(added, *stored)
	}
	return added, nil
}

func seedSessions(
	ctx context.Context,
	store storage.Store,
	faker *gofakeit.Faker,
	userID string,
	exercises []repo.Exercise,
	count int,
) (int, error) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		start := day.AddDate(0, 0, -2*(count-i)).Add(time.Duration(faker.Number(6, 20)) * time.Hour)
		end := start.Add(time.Duration(faker.Number(40, 100)) * time.Minute)

		session := repo.TrainingSession{
			OwnerID:   userID,
			Name:      faker.HipsterWord() + " day",
			StartDate: start,
			EndDate:   &end,
			Status:    repo.SessionStatusClosed,
		}
		// the latest session stays open, analytics must skip it
		if i == count-1 {
			session.EndDate = nil
			session.Status = repo.SessionStatusOpen
		}

		perm := make([]int, len(exercises))
		for j := range perm {
			perm[j] = j
		}
		faker.ShuffleInts(perm)
		for _, j := range perm[:faker.Number(2, 5)] {
			sets := make([]repo.SetRecord, faker.Number(2, 5))
			for k := range sets {
				sets[k] = repo.SetRecord{
					Reps:     faker.Number(3, 15),
					Weight:   pkg.Round2(faker.Float64Range(10, 140)),
					RestTime: faker.Number(45, 240),
				}
			}
			session.Exercises = append(session.Exercises, repo.SessionExercise{
				ExerciseID: exercises[j].ID,
				Sets:       sets,
			})
		}

		if _, err := store.AddSession(ctx, session); err != nil {
			return i, fmt.Errorf("add session %d: %w", i, err)
		}
	}
	return count, nil
}

func seedBodyMetrics(ctx context.Context, store storage.Store, faker *gofakeit.Faker, userID string, count int) error {
	height := pkg.Round2(faker.Float64Range(160, 200))
	weight := faker.Float64Range(65, 100)
	for i := 0; i < count; i++ {
		weight += faker.Float64Range(-0.8, 0.8)
		w := pkg.Round2(weight)
		bodyFat := pkg.Round2(faker.Float64Range(10, 25))
		metric := repo.BodyMetric{
			OwnerID:    userID,
			Weight:     &w,
			Height:     &height,
			BodyFat:    &bodyFat,
			MeasuredAt: time.Now().UTC().AddDate(0, 0, -6*(count-i)),
		}
		if _, err := store.AddMetric(ctx, metric); err != nil {
			return fmt.Errorf("add metric %d: %w", i, err)
		}
	}
	return nil
}
