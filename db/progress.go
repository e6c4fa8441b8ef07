package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"logicheck/models"
)

const (
	learnersCollection = "learners"
	// MaxAnalysisHistory is how many analyses are kept per learner, newest last.
	MaxAnalysisHistory = 50
)

var (
	ErrLearnerNotFound     = errors.New("learner not found")
	ErrProgressUnavailable = errors.New("progress tracking is not configured")
)

// ProgressStore records practice results per learner id.
type ProgressStore interface {
	RecordSparring(ctx context.Context, learnerID, fallacy string, correct bool) error
	RecordBias(ctx context.Context, learnerID string, score int) error
	RecordAnalysis(ctx context.Context, learnerID, kind string, textLength int) error
	Progress(ctx context.Context, learnerID string) (*models.LearnerProgress, error)
	Ping(ctx context.Context) error
}

// MongoProgressStore keeps one document per learner, created on first write.
type MongoProgressStore struct {
	client   *mongo.Client
	learners *mongo.Collection
	now      func() time.Time
}

func NewMongoProgressStore(client *mongo.Client, database *mongo.Database) *MongoProgressStore {
	return &MongoProgressStore{
		client:   client,
		learners: database.Collection(learnersCollection),
		now:      time.Now,
	}
}

func (s *MongoProgressStore) upsert(ctx context.Context, learnerID string, update bson.M) error {
	_, err := s.learners.UpdateByID(ctx, learnerID, update, options.Update().SetUpsert(true))
	return err
}

func (s *MongoProgressStore) RecordSparring(ctx context.Context, learnerID, fallacy string, correct bool) error {
	return s.upsert(ctx, learnerID, sparringUpdate(fallacy, correct, s.now()))
}

func (s *MongoProgressStore) RecordBias(ctx context.Context, learnerID string, score int) error {
	return s.upsert(ctx, learnerID, biasUpdate(score, s.now()))
}

func (s *MongoProgressStore) RecordAnalysis(ctx context.Context, learnerID, kind string, textLength int) error {
	return s.upsert(ctx, learnerID, analysisUpdate(kind, textLength, s.now()))
}

func (s *MongoProgressStore) Progress(ctx context.Context, learnerID string) (*models.LearnerProgress, error) {
	var progress models.LearnerProgress
	err := s.learners.FindOne(ctx, bson.M{"_id": learnerID}).Decode(&progress)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLearnerNotFound
		}
		return nil, err
	}
	if progress.DojoStats.FallacyMastery == nil {
		progress.DojoStats.FallacyMastery = map[string]int{}
	}
	if progress.AnalysisHistory == nil {
		progress.AnalysisHistory = []models.AnalysisRecord{}
	}
	return &progress, nil
}

func (s *MongoProgressStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoProgressStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func touch(now time.Time) (bson.M, bson.M) {
	return bson.M{"createdAt": now}, bson.M{"lastActive": now}
}

func sparringUpdate(fallacy string, correct bool, now time.Time) bson.M {
	onInsert, set := touch(now)
	inc := bson.M{"dojoStats.totalChallenges": 1}
	if correct {
		inc["dojoStats.correctAnswers"] = 1
		inc["dojoStats.fallacyMastery."+masteryKey(fallacy)] = 1
	}
	return bson.M{"$setOnInsert": onInsert, "$set": set, "$inc": inc}
}

func biasUpdate(score int, now time.Time) bson.M {
	onInsert, set := touch(now)
	return bson.M{
		"$setOnInsert": onInsert,
		"$set":         set,
		"$inc":         bson.M{"dojoStats.biasChallenges": 1},
		"$max":         bson.M{"dojoStats.bestBiasScore": score},
	}
}

func analysisUpdate(kind string, textLength int, now time.Time) bson.M {
	onInsert, set := touch(now)
	record := models.AnalysisRecord{Type: kind, Timestamp: now, TextLength: textLength}
	return bson.M{
		"$setOnInsert": onInsert,
		"$set":         set,
		"$push": bson.M{"analysisHistory": bson.M{
			"$each":  bson.A{record},
			"$slice": -MaxAnalysisHistory,
		}},
	}
}

// masteryKey makes a fallacy name safe to use as a field path segment.
func masteryKey(name string) string {
	return strings.NewReplacer(".", "_", "$", "_").Replace(name)
}

// NopProgressStore is used when no database is configured.
type NopProgressStore struct{}

func (NopProgressStore) RecordSparring(context.Context, string, string, bool) error { return nil }
func (NopProgressStore) RecordBias(context.Context, string, int) error               { return nil }
func (NopProgressStore) RecordAnalysis(context.Context, string, string, int) error   { return nil }

func (NopProgressStore) Progress(context.Context, string) (*models.LearnerProgress, error) {
	return nil, ErrProgressUnavailable
}

func (NopProgressStore) Ping(context.Context) error { return ErrProgressUnavailable }
