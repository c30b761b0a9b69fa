package moviestore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoDisconnectTimeout bounds Close.
const mongoDisconnectTimeout = 5 * time.Second

// movieDocument is the stored shape of a movie in MongoDB.
type movieDocument struct {
	ID        string    `bson:"_id"`
	Year      int       `bson:"year"`
	Title     string    `bson:"title"`
	Studios   string    `bson:"studios"`
	Producers string    `bson:"producers"`
	Winner    bool      `bson:"winner"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d movieDocument) toMovie() schema.Movie {
	return schema.Movie{
		ID:        d.ID,
		Year:      d.Year,
		Title:     d.Title,
		Studios:   d.Studios,
		Producers: d.Producers,
		Winner:    d.Winner,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// MongoStore stores movies in a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ contract.MovieStore = &MongoStore{} // Compile-time check

// mongoDatabaseName extracts the database name from a connection string.
func mongoDatabaseName(connStr string) (string, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return "", fmt.Errorf("invalid MongoDB connection string: %w", err)
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return "", errors.New("MongoDB connection string must name a database")
	}
	return name, nil
}

func connectMongo(ctx context.Context, connStr string) (*mongo.Client, string, error) {
	dbName, err := mongoDatabaseName(connStr)
	if err != nil {
		return nil, "", err
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to MongoDB store: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, "", fmt.Errorf("failed to connect to mongodb database. Check that the server is running and connection parameters are valid: %w", err)
	}
	return client, dbName, nil
}

// NewMongoStore connects to MongoDB and ensures the unique (title, year) index.
func NewMongoStore(ctx context.Context, connStr, collectionName string) (*MongoStore, error) {
	client, dbName, err := connectMongo(ctx, connStr)
	if err != nil {
		return nil, err
	}
	collection := client.Database(dbName).Collection(collectionName)

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}, {Key: "year", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("title_year_unique"),
	}
	if _, err := collection.Indexes().CreateOne(ctx, index); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	return &MongoStore{client: client, collection: collection}, nil
}

// BulkUpsert issues one ordered batch of upserting updates.
// The generated id and createdAt are only written when the document is inserted.
func (s *MongoStore) BulkUpsert(ctx context.Context, movies []schema.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(movies))
	for _, m := range movies {
		update := bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "studios", Value: m.Studios},
				{Key: "producers", Value: m.Producers},
				{Key: "winner", Value: m.Winner},
				{Key: "updatedAt", Value: m.UpdatedAt},
			}},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "_id", Value: m.ID},
				{Key: "createdAt", Value: m.CreatedAt},
			}},
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "title", Value: m.Title}, {Key: "year", Value: m.Year}}).
			SetUpdate(update).
			SetUpsert(true))
	}
	if _, err := s.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to bulk upsert movies: %w", err)
	}
	return nil
}

// ListMovies returns every movie ordered by year, then title.
func (s *MongoStore) ListMovies(ctx context.Context) ([]schema.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "title", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	movies := make([]schema.Movie, len(docs))
	for i, d := range docs {
		movies[i] = d.toMovie()
	}
	return movies, nil
}

// GetStatus returns status information about the collection.
func (s *MongoStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(schema.MongoDBBackend),
		Connected: s.client != nil,
		Table:     s.collection.Name(),
	}

	total, err := s.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return status, fmt.Errorf("failed to get total movies: %w", err)
	}
	status.TotalMovies = int(total)

	winners, err := s.collection.CountDocuments(ctx, bson.D{{Key: "winner", Value: true}})
	if err != nil {
		return status, fmt.Errorf("failed to get total winners: %w", err)
	}
	status.TotalWinners = int(winners)

	if total > 0 {
		status.OldestUpdate = s.updatedAtBound(ctx, 1)
		status.LastUpdate = s.updatedAtBound(ctx, -1)
	}

	var stats struct {
		Size int64 `bson:"size"`
	}
	cmd := bson.D{{Key: "collStats", Value: s.collection.Name()}}
	if err := s.collection.Database().RunCommand(ctx, cmd).Decode(&stats); err == nil {
		status.TableSizeBytes = stats.Size
	}
	return status, nil
}

// updatedAtBound returns the smallest (order 1) or largest (order -1) updatedAt.
func (s *MongoStore) updatedAtBound(ctx context.Context, order int) time.Time {
	var doc movieDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: order}})
	if err := s.collection.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		return time.Time{}
	}
	return doc.UpdatedAt.UTC()
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// dropMongoCollection removes the movie collection.
func dropMongoCollection(ctx context.Context, connStr, collectionName string) error {
	client, dbName, err := connectMongo(ctx, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Database(dbName).Collection(collectionName).Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop collection %s: %w", collectionName, err)
	}
	return nil
}
