package infra_mongo_content

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/distancehug/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ContentMongoShapeSuite struct {
	suite.Suite
}

var sentAt = time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC)

func toMap(t provider.T, v any) bson.M {
	raw, err := bson.Marshal(v)
	require.NoError(t, err)

	var out bson.M
	require.NoError(t, bson.Unmarshal(raw, &out))
	return out
}

func fieldsOf(d bson.D) bson.M {
	m := make(bson.M, len(d))
	for _, e := range d {
		m[e.Key] = e.Value
	}
	return m
}

func (s *ContentMongoShapeSuite) TestEntryFieldsAreFlat(t provider.T) {
	t.Parallel()

	id := uuid.New()
	message := "hi"
	doc := toMap(t, entryDoc[model.Flower]{
		ID:       id.String(),
		RoomCode: "LOVE42",
		SentAt:   sentAt,
		Payload:  model.Flower{Sender: "Alex", FlowerType: "rose", Message: &message},
	})

	assert.Equal(t, id.String(), doc["id"])
	assert.Equal(t, "LOVE42", doc["room_code"])
	assert.Equal(t, "Alex", doc["sender"])
	assert.Equal(t, "rose", doc["flower_type"])
	assert.Equal(t, "hi", doc["message"])
	assert.Contains(t, doc, "sent_at")
	assert.NotContains(t, doc, "payload")
	assert.NotContains(t, doc, "_id")
}

func (s *ContentMongoShapeSuite) TestEntryDecodesStoredDocument(t provider.T) {
	t.Parallel()

	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: bson.NewObjectID()},
		{Key: "id", Value: "550e8400-e29b-41d4-a716-446655440000"},
		{Key: "room_code", Value: "LOVE42"},
		{Key: "sender", Value: "Sam"},
		{Key: "hug_type", Value: "bear"},
		{Key: "sent_at", Value: sentAt},
	})
	require.NoError(t, err)

	var doc entryDoc[model.Hug]
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", doc.ID)
	assert.Equal(t, model.Hug{Sender: "Sam", HugType: "bear"}, doc.Payload)
	assert.True(t, doc.SentAt.Equal(sentAt))
}

func (s *ContentMongoShapeSuite) TestUpsertUpdate(t provider.T) {
	t.Parallel()

	later := sentAt.Add(time.Hour)
	update, err := upsertUpdate(model.Document[model.Countdown]{
		RoomCode:  "LOVE42",
		CreatedAt: sentAt,
		UpdatedAt: later,
		Value:     model.Countdown{EventName: "visit", TargetDate: "2026-03-01"},
	})
	require.NoError(t, err)

	require.Len(t, update, 2)
	assert.Equal(t, "$set", update[0].Key)
	assert.Equal(t, "$setOnInsert", update[1].Key)

	set, ok := update[0].Value.(bson.D)
	require.True(t, ok)
	fields := fieldsOf(set)
	assert.Equal(t, "visit", fields["event_name"])
	assert.Equal(t, "2026-03-01", fields["target_date"])
	assert.Equal(t, later, fields["updated_at"])
	assert.NotContains(t, fields, "created_at")

	onInsert, ok := update[1].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, sentAt, fieldsOf(onInsert)["created_at"])
}

func (s *ContentMongoShapeSuite) TestDocumentDecodesItems(t provider.T) {
	t.Parallel()

	raw, err := bson.Marshal(bson.D{
		{Key: "room_code", Value: "LOVE42"},
		{Key: "items", Value: bson.A{
			bson.D{{Key: "text", Value: "Paris"}, {Key: "completed", Value: true}},
			bson.D{{Key: "text", Value: ""}, {Key: "completed", Value: false}},
		}},
		{Key: "created_at", Value: sentAt},
		{Key: "updated_at", Value: sentAt},
	})
	require.NoError(t, err)

	var doc document[model.BucketList]
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, []model.BucketListItem{{Text: "Paris", Completed: true}, {Text: ""}}, doc.Value.Items)
}

func TestContentMongoShapeSuite(t *testing.T) {
	suite.RunSuite(t, new(ContentMongoShapeSuite))
}
