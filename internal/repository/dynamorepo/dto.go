package dynamorepo

import (
	"time"

	"github.com/mrled/suns/textval/internal/model"
)

// DynamoDTO represents the persistence layer DTO for DynamoDB.
// The partition key pk holds the record ID; there is no sort key.
type DynamoDTO struct {
	PK        string          `dynamodbav:"pk"` // Partition Key - maps from ID
	Operation model.Operation `dynamodbav:"Operation"`
	Input     []string        `dynamodbav:"Input"`
	Result    string          `dynamodbav:"Result"`
	Error     string          `dynamodbav:"Error,omitempty"`
	CheckTime time.Time       `dynamodbav:"CheckTime"`
	Rev       int64           `dynamodbav:"Rev"` // Monotonically increasing revision number
}

// ToDomain converts a DynamoDTO to a domain model CheckRecord
func (dto *DynamoDTO) ToDomain() *model.CheckRecord {
	return &model.CheckRecord{
		ID:        dto.PK,
		Operation: dto.Operation,
		Input:     dto.Input,
		Result:    dto.Result,
		Error:     dto.Error,
		CheckTime: dto.CheckTime,
		Rev:       dto.Rev,
	}
}

// FromDomain creates a DynamoDTO from a domain model CheckRecord
func FromDomain(record *model.CheckRecord) *DynamoDTO {
	return &DynamoDTO{
		PK:        record.ID,
		Operation: record.Operation,
		Input:     record.Input,
		Result:    record.Result,
		Error:     record.Error,
		CheckTime: record.CheckTime,
		Rev:       record.Rev,
	}
}

// ToDomainList converts a slice of DynamoDTOs to domain model CheckRecords
func ToDomainList(dtos []*DynamoDTO) []*model.CheckRecord {
	records := make([]*model.CheckRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = dto.ToDomain()
	}
	return records
}
