package article

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the durable Store implementation, selected when the service
// runs with STORAGE=mongo. It preserves the MemStore contract, including the
// sequential integer ids, which come from a counters collection.
type MongoStore struct {
	col      *mongo.Collection
	counters *mongo.Collection
	logger   *log.Logger
}

func NewMongoStore(db *mongo.Database, logger *log.Logger) (*MongoStore, error) {
	if logger == nil {
		logger = log.Default()
	}

	store := &MongoStore{
		col:      db.Collection("articles"),
		counters: db.Collection("counters"),
		logger:   logger,
	}
	if err := store.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// ensureIndexes keeps the list sort and the common filters off collection scans.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "severity", Value: 1}},
		},
	}
	_, err := s.col.Indexes().CreateMany(ctx, indexes)

	if err != nil {
		s.logger.Printf("failed to create indexes: %v", err)
	}
	return err
}

// nextID atomically advances the article id sequence. Ids start at 1 and are
// never reused, matching the in-memory store.
func (s *MongoStore) nextID(ctx context.Context) (int, error) {
	res := s.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "articles"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)
	if res.Err() != nil {
		return 0, fmt.Errorf("advance id sequence: %w", res.Err())
	}

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, fmt.Errorf("decode id sequence: %w", err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) List(ctx context.Context, f Filter) ([]Article, error) {
	filter := bson.M{}

	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		search := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": search},
			bson.M{"excerpt": search},
			bson.M{"company": search},
		}
	}
	if len(f.Categories) > 0 {
		filter["category"] = bson.M{"$in": f.Categories}
	}
	if f.Severity != "" && f.Severity != "all" {
		filter["severity"] = f.Severity
	}

	offset := f.Offset
	if offset < 0 {
		offset = DefaultOffset
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	cur, err := s.col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cur.Close(ctx)

	articles := []Article{}
	if err := cur.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

func (s *MongoStore) Get(ctx context.Context, id int) (Article, bool, error) {
	var a Article
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Article{}, false, nil
	}
	if err != nil {
		return Article{}, false, fmt.Errorf("get article %d: %w", id, err)
	}
	return a, true, nil
}

func (s *MongoStore) Create(ctx context.Context, in InsertArticle) (Article, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return Article{}, err
	}

	a := Article{
		ID:        id,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		Severity:  in.Severity,
		Company:   in.Company,
		Location:  in.Location,
		Reporter:  in.Reporter,
		ReadTime:  in.ReadTime,
		Timestamp: time.Now(),
	}
	if _, err := s.col.InsertOne(ctx, a); err != nil {
		return Article{}, fmt.Errorf("insert article: %w", err)
	}
	return a, nil
}

func (s *MongoStore) RecordView(ctx context.Context, id int) error {
	// Unknown ids match nothing, which is the required no-op.
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("record view for %d: %w", id, err)
	}
	return nil
}

func (s *MongoStore) AdjustLikes(ctx context.Context, id int, increment bool) error {
	return s.adjustCounter(ctx, id, "likes", increment)
}

func (s *MongoStore) AdjustDislikes(ctx context.Context, id int, increment bool) error {
	return s.adjustCounter(ctx, id, "dislikes", increment)
}

// adjustCounter enforces the zero floor in the filter: a decrement only
// matches documents where the counter is still positive.
func (s *MongoStore) adjustCounter(ctx context.Context, id int, field string, increment bool) error {
	filter := bson.M{"_id": id}
	delta := 1
	if !increment {
		filter[field] = bson.M{"$gt": 0}
		delta = -1
	}

	_, err := s.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("adjust %s for %d: %w", field, id, err)
	}
	return nil
}

func (s *MongoStore) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{
		CategoryCounts: make(map[string]int),
	}

	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Stats{}, fmt.Errorf("count articles: %w", err)
	}
	stats.TotalIncidents = int(total)

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	active, err := s.col.CountDocuments(ctx, bson.M{"timestamp": bson.M{"$gt": weekAgo}})
	if err != nil {
		return Stats{}, fmt.Errorf("count active articles: %w", err)
	}
	stats.ActiveThisWeek = int(active)

	critical, err := s.col.CountDocuments(ctx, bson.M{"severity": SeverityCritical})
	if err != nil {
		return Stats{}, fmt.Errorf("count critical articles: %w", err)
	}
	stats.CriticalLevel = int(critical)

	cur, err := s.col.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate categories: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var group struct {
			Category string `bson:"_id"`
			Count    int    `bson:"count"`
		}
		if err := cur.Decode(&group); err != nil {
			return Stats{}, fmt.Errorf("decode category group: %w", err)
		}
		stats.CategoryCounts[group.Category] = group.Count
	}
	if err := cur.Err(); err != nil {
		return Stats{}, fmt.Errorf("aggregate categories: %w", err)
	}

	return stats, nil
}
