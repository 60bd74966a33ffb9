package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/calculadora-pj/internal/models"
)

var ErrNotFound = errors.New("exchange rate not found")

type RateRepository struct {
	coll *mongo.Collection
}

func NewRateRepository(db *mongo.Database) *RateRepository {
	return &RateRepository{coll: db.Collection("exchange_rates")}
}

// EnsureIndexes cria o índice de updated_at usado na listagem.
func (r *RateRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: -1}},
		Options: options.Index().SetName("updated_at_desc"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	return err
}

// Upsert grava a cotação; o código da moeda é o _id.
func (r *RateRepository) Upsert(ctx context.Context, rate *models.ExchangeRate) error {
	if rate.UpdatedAt.IsZero() {
		rate.UpdatedAt = time.Now().UTC()
	}
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": rate.Currency},
		rate,
		options.Replace().SetUpsert(true),
	)
	return err
}

// InsertIfMissing grava só se a moeda ainda não existir. Devolve false quando já existia.
func (r *RateRepository) InsertIfMissing(ctx context.Context, rate *models.ExchangeRate) (bool, error) {
	if rate.UpdatedAt.IsZero() {
		rate.UpdatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, rate)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RateRepository) GetByCurrency(ctx context.Context, code string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.coll.FindOne(ctx, bson.M{"_id": code}).Decode(&rate)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *RateRepository) GetAll(ctx context.Context) ([]models.ExchangeRate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.ExchangeRate{}
	for cur.Next(ctx) {
		var rate models.ExchangeRate
		if err := cur.Decode(&rate); err != nil {
			return nil, err
		}
		list = append(list, rate)
	}
	return list, cur.Err()
}

func (r *RateRepository) Delete(ctx context.Context, code string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": code})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
