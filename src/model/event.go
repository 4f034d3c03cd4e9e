package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// RawRecord 输入数组中的单个元素，尚未解析
type RawRecord = json.RawMessage

// FlightSearchEvent 无结果航班搜索事件(MongoDB Extended JSON 导出格式)
// 时间字段保留原始值，由调用方检查是否为 {"$date": ...} 包装
type FlightSearchEvent struct {
	Timestamp     bson.RawValue `bson:"Timestamp"`
	SearchPayload SearchPayload `bson:"SearchPayload"`
	Source        string        `bson:"Source"`
}

// SearchPayload 搜索请求内容
// 航段保留原始值，只解码第一段，其余航段的内容不做检查
type SearchPayload struct {
	Itineraries []bson.RawValue `bson:"Itineraries"`
	Adults      int             `bson:"Adults"`
	Children    int             `bson:"Children"`
	Infants     int             `bson:"Infants"`
}

// Itinerary 行程航段
type Itinerary struct {
	Departure     string        `bson:"Departure"`
	Destination   string        `bson:"Destination"`
	DepartureDate bson.RawValue `bson:"DepartureDate"`
	Ticketclass   string        `bson:"Ticketclass"`
}
