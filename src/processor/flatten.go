package processor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"NoResultsReport/src/model"
	"NoResultsReport/src/storage"
)

// Policy 记录缺少必需字段时的处理方式
type Policy string

const (
	PolicySkip  Policy = "skip"  // 记录日志并跳过该条记录
	PolicyAbort Policy = "abort" // 整个展平阶段失败
)

// ParsePolicy 空字符串视为 skip
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicySkip:
		return PolicySkip, nil
	case PolicyAbort:
		return PolicyAbort, nil
	}
	return "", fmt.Errorf("unknown malformed-record policy %q (want skip or abort)", s)
}

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidRecord = errors.New("invalid record")
)

// ExtractionError 单条记录展平失败
type ExtractionError struct {
	Index int    // 记录在输入数组中的下标
	Field string // 出错的字段路径，解码失败时为空
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// FlattenResult 展平结果
type FlattenResult struct {
	Table   model.FlatTable
	Skipped []*ExtractionError
}

// ExtractRecord 从单条原始记录提取九个字段，只使用第一个航段
func ExtractRecord(index int, raw model.RawRecord) (model.FlatRecord, error) {
	var event model.FlightSearchEvent
	if err := bson.UnmarshalExtJSON(raw, false, &event); err != nil {
		return model.FlatRecord{}, &ExtractionError{Index: index, Err: fmt.Errorf("%w: %v", ErrInvalidRecord, err)}
	}

	timestamp, err := wrappedDate(event.Timestamp)
	if err != nil {
		return model.FlatRecord{}, &ExtractionError{Index: index, Field: "Timestamp.$date", Err: err}
	}

	payload := event.SearchPayload
	if len(payload.Itineraries) == 0 {
		return model.FlatRecord{}, &ExtractionError{Index: index, Field: "SearchPayload.Itineraries[0]", Err: ErrMissingField}
	}
	first, err := firstItinerary(payload.Itineraries[0])
	if err != nil {
		return model.FlatRecord{}, &ExtractionError{Index: index, Field: "SearchPayload.Itineraries[0]", Err: err}
	}
	departureDate, err := wrappedDate(first.DepartureDate)
	if err != nil {
		return model.FlatRecord{}, &ExtractionError{Index: index, Field: "SearchPayload.Itineraries[0].DepartureDate.$date", Err: err}
	}

	if payload.Adults < 0 || payload.Children < 0 || payload.Infants < 0 {
		return model.FlatRecord{}, &ExtractionError{
			Index: index,
			Field: "SearchPayload.Adults/Children/Infants",
			Err:   fmt.Errorf("%w: negative passenger count", ErrInvalidRecord),
		}
	}

	return model.FlatRecord{
		Timestamp:     timestamp,
		Departure:     first.Departure,
		Destination:   first.Destination,
		DepartureDate: departureDate,
		Adults:        payload.Adults,
		Children:      payload.Children,
		Infants:       payload.Infants,
		TicketClass:   first.Ticketclass,
		Source:        event.Source,
	}, nil
}

// wrappedDate 只接受 {"$date": ...} 解码出的 BSON 日期，裸字符串不算
func wrappedDate(v bson.RawValue) (time.Time, error) {
	switch v.Type {
	case 0, bsontype.Null, bsontype.Undefined:
		return time.Time{}, ErrMissingField
	case bsontype.DateTime:
		t, ok := v.TimeOK()
		if !ok {
			return time.Time{}, fmt.Errorf("%w: unreadable date", ErrInvalidRecord)
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: expected a $date wrapper, got %s", ErrInvalidRecord, v.Type)
}

// firstItinerary 只解码第一个航段
func firstItinerary(v bson.RawValue) (model.Itinerary, error) {
	var it model.Itinerary
	if v.Type != bsontype.EmbeddedDocument {
		return it, fmt.Errorf("%w: itinerary is %s, not a document", ErrInvalidRecord, v.Type)
	}
	if err := v.Unmarshal(&it); err != nil {
		return it, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return it, nil
}

// Flatten 按输入顺序展平全部记录
// abort 策略下遇到第一条错误记录即返回错误；skip 策略下跳过并记录
func Flatten(records []model.RawRecord, policy Policy, logger *storage.Logger) (FlattenResult, error) {
	result := FlattenResult{Table: make(model.FlatTable, 0, len(records))}
	log := logger.With("stage", "flatten", "policy", string(policy))

	for i, raw := range records {
		rec, err := ExtractRecord(i, raw)
		if err != nil {
			var extractErr *ExtractionError
			if !errors.As(err, &extractErr) {
				return FlattenResult{}, err
			}
			if policy == PolicyAbort {
				return FlattenResult{}, fmt.Errorf("展平失败: %w", err)
			}
			log.Warning("跳过无法展平的记录", "index", i, "field", extractErr.Field, "error", extractErr.Err)
			result.Skipped = append(result.Skipped, extractErr)
			continue
		}
		result.Table = append(result.Table, rec)
	}

	log.Info("展平完成", "records", len(result.Table), "skipped", len(result.Skipped))
	return result, nil
}
