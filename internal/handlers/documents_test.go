package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type documentEnvelope struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Document map[string]interface{} `json:"document"`
}

func newMockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func symptomDoc(id primitive.ObjectID, createdBy string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Headache"},
		{Key: "description", Value: "Dull pain behind the eyes"},
		{Key: "creator_type", Value: "U"},
		{Key: "status", Value: "A"},
		{Key: "created_by", Value: createdBy},
		{Key: "created_ts", Value: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)},
	}
}

func TestDocuments_ListAnswersIncludesVote(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("answers", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cinnamon.answers", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
			mtest.CreateCursorResponse(0, "cinnamon.answers", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "body", Value: "Try cutting caffeine after noon."},
				{Key: "status", Value: "A"},
				{Key: "up_vote", Value: int32(7)},
				{Key: "down_vote", Value: int32(2)},
			}),
		)

		rec := do(mt.T, http.MethodGet, "/api/health/answers", "", nil)
		require.Equal(mt, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Documents []map[string]interface{} `json:"documents"`
			Total     int64                    `json:"total"`
		}
		decode(mt.T, rec, &resp)
		require.Len(mt, resp.Documents, 1)
		assert.Equal(mt, float64(5), resp.Documents[0]["vote"])
		assert.Equal(mt, int64(1), resp.Total)
	})

	mt.Run("invalid status filter", func(mt *mtest.T) {
		database.DB = mt.DB
		rec := do(mt.T, http.MethodGet, "/api/health/answers?status=X", "", nil)
		require.Equal(mt, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		decode(mt.T, rec, &resp)
		assert.Equal(mt, "status", resp.Field)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestDocuments_Create(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("requires auth", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)

		rec := do(mt.T, http.MethodPost, "/api/health/symptoms", "", map[string]interface{}{"name": "Headache"})
		assert.Equal(mt, http.StatusUnauthorized, rec.Code)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("sets author and defaults", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		rec := do(mt.T, http.MethodPost, "/api/health/symptoms", auth, map[string]interface{}{
			"name":       "Headache",
			"created_by": bobID,
			"id":         primitive.NewObjectID().Hex(),
		})
		require.Equal(mt, http.StatusCreated, rec.Code, rec.Body.String())

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		assert.Equal(mt, aliceID, resp.Document["created_by"])
		assert.Equal(mt, "S", resp.Document["creator_type"])
		assert.Equal(mt, "A", resp.Document["status"])
		assert.NotEmpty(mt, resp.Document["id"])

		insert := mt.GetStartedEvent()
		require.NotNil(mt, insert)
		assert.Equal(mt, "insert", insert.CommandName)
		doc := insert.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, aliceID, doc.Lookup("created_by").StringValue())
	})

	mt.Run("creation time is set by the server", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		before := time.Now().UTC().Add(-time.Second)
		rec := do(mt.T, http.MethodPost, "/api/health/symptoms", auth, map[string]interface{}{
			"name":       "Headache",
			"created_ts": "1999-01-01T00:00:00Z",
		})
		require.Equal(mt, http.StatusCreated, rec.Code, rec.Body.String())

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		created, err := time.Parse(time.RFC3339Nano, resp.Document["created_ts"].(string))
		require.NoError(mt, err)
		assert.True(mt, created.After(before), "created_ts %v", created)

		insert := mt.GetStartedEvent()
		require.NotNil(mt, insert)
		doc := insert.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.True(mt, doc.Lookup("created_ts").Time().After(before))
	})

	mt.Run("challenge starts today and ends a week later", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		rec := do(mt.T, http.MethodPost, "/api/health/challenges", auth, map[string]interface{}{
			"action":     "ELIMINATING",
			"hunch":      map[string]interface{}{"name": "Dairy"},
			"start_date": "2020-10-01T00:00:00Z",
		})
		require.Equal(mt, http.StatusCreated, rec.Code, rec.Body.String())

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		start, err := time.Parse(time.RFC3339, resp.Document["start_date"].(string))
		require.NoError(mt, err)
		end, err := time.Parse(time.RFC3339, resp.Document["end_date"].(string))
		require.NoError(mt, err)

		assert.WithinDuration(mt, time.Now().UTC(), start, 24*time.Hour)
		assert.Equal(mt, start.AddDate(0, 0, 7), end)
		assert.Equal(mt, float64(1), resp.Document["state"])
	})

	mt.Run("validation error", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)

		rec := do(mt.T, http.MethodPost, "/api/health/symptoms", auth, map[string]interface{}{"creator_type": "Q", "name": "x"})
		require.Equal(mt, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		decode(mt.T, rec, &resp)
		assert.Equal(mt, "creator_type", resp.Field)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestDocuments_Get(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("found", func(mt *mtest.T) {
		database.DB = mt.DB
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cinnamon.symptoms", mtest.FirstBatch, symptomDoc(id, aliceID)))

		rec := do(mt.T, http.MethodGet, "/api/health/symptoms/"+id.Hex(), "", nil)
		require.Equal(mt, http.StatusOK, rec.Code)

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		assert.Equal(mt, id.Hex(), resp.Document["id"])
		assert.Equal(mt, "Headache", resp.Document["name"])
	})

	mt.Run("bad id", func(mt *mtest.T) {
		database.DB = mt.DB
		rec := do(mt.T, http.MethodGet, "/api/health/symptoms/zzz", "", nil)
		assert.Equal(mt, http.StatusNotFound, rec.Code)
	})
}

func TestDocuments_Update(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("merges body and keeps author", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cinnamon.symptoms", mtest.FirstBatch, symptomDoc(id, aliceID)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
		)

		rec := do(mt.T, http.MethodPatch, "/api/health/symptoms/"+id.Hex(), auth, map[string]interface{}{
			"description": "Sharp pain",
			"created_by":  bobID,
			"created_ts":  "1999-01-01T00:00:00Z",
		})
		require.Equal(mt, http.StatusOK, rec.Code, rec.Body.String())

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		assert.Equal(mt, "Headache", resp.Document["name"])
		assert.Equal(mt, "Sharp pain", resp.Document["description"])
		assert.Equal(mt, aliceID, resp.Document["created_by"])
		assert.Equal(mt, "2026-09-01T08:00:00Z", resp.Document["created_ts"])
		assert.Equal(mt, id.Hex(), resp.Document["id"])
	})

	mt.Run("put replaces the document", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cinnamon.symptoms", mtest.FirstBatch, symptomDoc(id, aliceID)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
		)

		rec := do(mt.T, http.MethodPut, "/api/health/symptoms/"+id.Hex(), auth, map[string]interface{}{
			"name":       "Migraine",
			"created_ts": "1999-01-01T00:00:00Z",
		})
		require.Equal(mt, http.StatusOK, rec.Code, rec.Body.String())

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		assert.Equal(mt, "Migraine", resp.Document["name"])
		assert.Equal(mt, "", resp.Document["description"])
		assert.Equal(mt, "S", resp.Document["creator_type"])
		assert.Equal(mt, aliceID, resp.Document["created_by"])
		assert.Equal(mt, "2026-09-01T08:00:00Z", resp.Document["created_ts"])
		assert.Equal(mt, id.Hex(), resp.Document["id"])

		mt.GetStartedEvent() // find
		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		assert.Equal(mt, "update", update.CommandName)
		replacement := update.Command.Lookup("updates").Array().Index(0).Value().Document().Lookup("u").Document()
		assert.Equal(mt, "", replacement.Lookup("description").StringValue())
		assert.Equal(mt, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), replacement.Lookup("created_ts").Time().UTC())
	})

	mt.Run("other users are refused", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, bobID)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cinnamon.symptoms", mtest.FirstBatch, symptomDoc(id, aliceID)))

		rec := do(mt.T, http.MethodPut, "/api/health/symptoms/"+id.Hex(), auth, map[string]interface{}{"name": "Mine now"})
		assert.Equal(mt, http.StatusForbidden, rec.Code)
	})
}

func TestDocuments_DeleteIsSoft(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("symptom", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, aliceID)
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cinnamon.symptoms", mtest.FirstBatch, symptomDoc(id, aliceID)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
		)

		rec := do(mt.T, http.MethodDelete, "/api/health/symptoms/"+id.Hex(), auth, nil)
		require.Equal(mt, http.StatusOK, rec.Code, rec.Body.String())

		mt.GetStartedEvent() // find
		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		assert.Equal(mt, "update", update.CommandName)
		set := update.Command.Lookup("updates").Array().Index(0).Value().Document().Lookup("u", "$set").Document()
		assert.Equal(mt, "D", set.Lookup("status").StringValue())
	})
}

func TestDocuments_VoteAnswer(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("upvote", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		auth := signIn(mt.T, bobID)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "body", Value: "Drink more water"},
			{Key: "status", Value: "A"},
			{Key: "up_vote", Value: int32(4)},
			{Key: "down_vote", Value: int32(1)},
		}}))

		rec := do(mt.T, http.MethodPost, "/api/health/answers/"+id.Hex()+"/upvote", auth, nil)
		require.Equal(mt, http.StatusOK, rec.Code, rec.Body.String())

		var resp documentEnvelope
		decode(mt.T, rec, &resp)
		assert.Equal(mt, float64(3), resp.Document["vote"])

		cmd := mt.GetStartedEvent()
		require.NotNil(mt, cmd)
		assert.Equal(mt, "findAndModify", cmd.CommandName)
		assert.Equal(mt, int32(1), cmd.Command.Lookup("update", "$inc", "up_vote").Int32())
	})

	mt.Run("requires auth", func(mt *mtest.T) {
		database.DB = mt.DB
		setupRedis(mt.T)
		rec := do(mt.T, http.MethodPost, "/api/health/answers/"+primitive.NewObjectID().Hex()+"/downvote", "", nil)
		assert.Equal(mt, http.StatusUnauthorized, rec.Code)
	})
}
