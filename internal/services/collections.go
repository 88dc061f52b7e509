package services

import (
	"go.mongodb.org/mongo-driver/bson"
)

// CollectionSpec declares one health collection: its secondary indexes and
// the fixed order listings come back in.
type CollectionSpec struct {
	Name    string
	Indexes []bson.D
	Sort    bson.D
	// SoftDelete marks deleted documents with status D instead of removing them.
	SoftDelete bool
}

func asc(field string) bson.D  { return bson.D{{Key: field, Value: 1}} }
func desc(field string) bson.D { return bson.D{{Key: field, Value: -1}} }

var insertionOrder = asc("_id")

var (
	IntroQuestionCollection = CollectionSpec{
		Name:       "intro_questions",
		Indexes:    []bson.D{asc("status")},
		Sort:       insertionOrder,
		SoftDelete: true,
	}
	SymptomCollection = CollectionSpec{
		Name:       "symptoms",
		Indexes:    []bson.D{asc("name"), asc("creator_type"), asc("status"), desc("created_by"), desc("created_ts")},
		Sort:       insertionOrder,
		SoftDelete: true,
	}
	HunchCollection = CollectionSpec{
		Name:       "hunches",
		Indexes:    []bson.D{asc("name"), asc("status"), desc("created_by"), desc("created_ts")},
		Sort:       insertionOrder,
		SoftDelete: true,
	}
	HealthConditionCollection = CollectionSpec{
		Name:       "health_conditions",
		Indexes:    []bson.D{asc("name"), asc("status"), desc("created_by"), desc("created_ts")},
		Sort:       insertionOrder,
		SoftDelete: true,
	}
	ArticleCollection = CollectionSpec{
		Name:       "articles",
		Indexes:    []bson.D{desc("ts"), desc("status"), desc("created_ts")},
		Sort:       desc("ts"),
		SoftDelete: true,
	}
	// Logs carry no status field, so deleting one removes it.
	ChallengeLogCollection = CollectionSpec{
		Name:    "challenge_logs",
		Indexes: []bson.D{desc("date"), desc("rating"), desc("mood"), desc("complete")},
		Sort:    desc("date"),
	}
	ChallengeCollection = CollectionSpec{
		Name:       "challenges",
		Indexes:    []bson.D{desc("state"), desc("status"), desc("start_date"), desc("end_date"), desc("created_by"), desc("created_ts")},
		Sort:       desc("start_date"),
		SoftDelete: true,
	}
	AnswerCollection = CollectionSpec{
		Name:       "answers",
		Indexes:    []bson.D{desc("down_vote"), desc("up_vote"), desc("status"), desc("created_by"), desc("created_ts")},
		Sort:       desc("created_ts"),
		SoftDelete: true,
	}
	QuestionsCollection = CollectionSpec{
		Name:       "questions",
		Indexes:    []bson.D{desc("status"), desc("created_by"), desc("created_ts")},
		Sort:       desc("created_ts"),
		SoftDelete: true,
	}
	StatisticCollection = CollectionSpec{
		Name:       "statistics",
		Indexes:    []bson.D{desc("status"), desc("created_ts")},
		Sort:       desc("created_ts"),
		SoftDelete: true,
	}
)

// HealthCollections lists every collection whose indexes are ensured at startup.
var HealthCollections = []CollectionSpec{
	IntroQuestionCollection,
	SymptomCollection,
	HunchCollection,
	HealthConditionCollection,
	ArticleCollection,
	ChallengeLogCollection,
	ChallengeCollection,
	AnswerCollection,
	QuestionsCollection,
	StatisticCollection,
}
