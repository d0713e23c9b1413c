package faculty

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest adds a roster entry. The sequence number is assigned
// by the service (current count + 1) unless the caller provides one.
type CreateRequest struct {
	SeqNo      int    `json:"seq_no,omitempty"`
	Department string `json:"department" binding:"required"`
	Rank       string `json:"rank" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Department,
			validation.Required.Error("department is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Rank,
			validation.Required.Error("rank is required"),
			validation.In(rankValues()...).Error("rank must be one of the fixed ranks"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.SeqNo, validation.Min(0)),
	)
}

// UpdateRequest mutates a roster entry in place by sequence number.
type UpdateRequest struct {
	Department string `json:"department" binding:"required"`
	Rank       string `json:"rank" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Department, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Rank,
			validation.Required,
			validation.In(rankValues()...).Error("rank must be one of the fixed ranks"),
		),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

func rankValues() []interface{} {
	ranks := AllRanks()
	values := make([]interface{}, len(ranks))
	for i, r := range ranks {
		values[i] = string(r)
	}
	return values
}
