package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/metrics"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentPtr constrains a store's element to a pointer implementing models.Document.
type DocumentPtr[T any] interface {
	*T
	models.Document
}

// DocumentStore persists one kind of health document in its collection.
type DocumentStore[T any, PT DocumentPtr[T]] struct {
	Spec CollectionSpec
	now  func() time.Time
}

func NewDocumentStore[T any, PT DocumentPtr[T]](spec CollectionSpec) *DocumentStore[T, PT] {
	return &DocumentStore[T, PT]{
		Spec: spec,
		// Mongo keeps millisecond precision.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *DocumentStore[T, PT]) collection() *mongo.Collection {
	return database.DB.Collection(s.Spec.Name)
}

// ListQuery selects a page of documents. An empty Status hides deleted ones.
type ListQuery struct {
	Status models.Status
	Limit  int64
	Skip   int64
}

// filter ignores Status for collections whose documents have no status.
func (q ListQuery) filter(softDelete bool) bson.M {
	if !softDelete {
		return bson.M{}
	}
	if q.Status != "" {
		return bson.M{"status": q.Status}
	}
	return bson.M{"status": bson.M{"$ne": models.StatusDeleted}}
}

// ParseDocumentID maps a malformed hex id to ErrDocumentNotFound.
func ParseDocumentID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrDocumentNotFound
	}
	return id, nil
}

// Create applies defaults, validates and inserts doc, assigning an id when it has none.
func (s *DocumentStore[T, PT]) Create(ctx context.Context, doc PT) error {
	doc.ApplyDefaults(s.now())
	if err := models.Validate(doc); err != nil {
		return err
	}
	if doc.DocumentID().IsZero() {
		doc.SetDocumentID(primitive.NewObjectID())
	}

	if _, err := s.collection().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", s.Spec.Name, err)
	}
	metrics.DocumentWrites.WithLabelValues(s.Spec.Name, "insert").Inc()
	return nil
}

func (s *DocumentStore[T, PT]) Get(ctx context.Context, id primitive.ObjectID) (PT, error) {
	doc := PT(new(T))
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns a page in the collection's fixed sort order plus the number
// of documents matching the filter.
func (s *DocumentStore[T, PT]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	col := s.collection()
	filter := q.filter(s.Spec.SoftDelete)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(s.Spec.Sort).SetSkip(q.Skip)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	docs := []T{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", s.Spec.Name, err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// Replace re-applies defaults, validates and overwrites the stored document
// with the same id.
func (s *DocumentStore[T, PT]) Replace(ctx context.Context, doc PT) error {
	doc.ApplyDefaults(s.now())
	if err := models.Validate(doc); err != nil {
		return err
	}

	res, err := s.collection().ReplaceOne(ctx, bson.M{"_id": doc.DocumentID()}, doc)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", s.Spec.Name, err)
	}
	if res.MatchedCount == 0 {
		return ErrDocumentNotFound
	}
	metrics.DocumentWrites.WithLabelValues(s.Spec.Name, "replace").Inc()
	return nil
}

// Delete marks the document deleted, or removes it for collections without a status.
func (s *DocumentStore[T, PT]) Delete(ctx context.Context, id primitive.ObjectID) error {
	col := s.collection()

	var matched int64
	if s.Spec.SoftDelete {
		res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": models.StatusDeleted}})
		if err != nil {
			return err
		}
		matched = res.MatchedCount
	} else {
		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		matched = res.DeletedCount
	}

	if matched == 0 {
		return ErrDocumentNotFound
	}
	metrics.DocumentWrites.WithLabelValues(s.Spec.Name, "delete").Inc()
	return nil
}

// Increment atomically adds delta to a numeric field and returns the updated document.
func (s *DocumentStore[T, PT]) Increment(ctx context.Context, id primitive.ObjectID, field string, delta int) (PT, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	doc := PT(new(T))
	err := s.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}}, opts).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	metrics.DocumentWrites.WithLabelValues(s.Spec.Name, "increment").Inc()
	return doc, nil
}

// EnsureIndexes creates the collection's declared secondary indexes.
func EnsureIndexes(ctx context.Context, spec CollectionSpec) error {
	col := database.DB.Collection(spec.Name)

	for _, keys := range spec.Indexes {
		m := mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetName(indexName(keys)),
		}
		if _, err := col.Indexes().CreateOne(ctx, m); err != nil {
			return fmt.Errorf("index %s on %s: %w", indexName(keys), spec.Name, err)
		}
	}
	return nil
}

// EnsureHealthIndexes is called on startup after Mongo has connected.
func EnsureHealthIndexes(ctx context.Context) error {
	for _, spec := range HealthCollections {
		if err := EnsureIndexes(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

// indexName renders keys as idx_<field>_<asc|desc>[_<field>_<dir>...].
func indexName(keys bson.D) string {
	name := "idx"
	for _, k := range keys {
		dir := "asc"
		if v, ok := k.Value.(int); ok && v < 0 {
			dir = "desc"
		}
		name += "_" + k.Key + "_" + dir
	}
	return name
}
