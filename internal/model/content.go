package model

type Flower struct {
	Sender     string  `json:"sender" bson:"sender"`
	FlowerType string  `json:"flower_type" bson:"flower_type"`
	Message    *string `json:"message,omitempty" bson:"message,omitempty"`
}

type Note struct {
	Sender  string `json:"sender" bson:"sender"`
	Content string `json:"content" bson:"content"`
}

type Hug struct {
	Sender  string `json:"sender" bson:"sender"`
	HugType string `json:"hug_type" bson:"hug_type"`
}

type ValentineCard struct {
	Sender   string `json:"sender" bson:"sender"`
	CardType string `json:"card_type" bson:"card_type"`
	Message  string `json:"message" bson:"message"`
}

type Countdown struct {
	EventName  string `json:"event_name" bson:"event_name"`
	TargetDate string `json:"target_date" bson:"target_date"`
}

type BucketListItem struct {
	Text      string `json:"text" bson:"text"`
	Completed bool   `json:"completed" bson:"completed"`
}

type BucketList struct {
	Items []BucketListItem `json:"items" bson:"items"`
}
