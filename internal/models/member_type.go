package models

// Идентификаторы типов участников. Набор фиксирован, создавать и удалять типы нельзя.
const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

// MemberType — тип участника: скидка и лимит постов в месяц.
type MemberType struct {
	ID              string  `json:"id" validate:"required"`
	Discount        float64 `json:"discount" validate:"gte=0"`
	MonthPostsLimit int     `json:"monthPostsLimit" validate:"gte=0"`
}

func (m MemberType) RecordID() string { return m.ID }

func (m MemberType) WithID(id string) MemberType {
	m.ID = id
	return m
}

func (m MemberType) Clone() MemberType { return m }

func (m MemberType) Field(key string) (any, bool) {
	switch key {
	case "id":
		return m.ID, true
	case "discount":
		return m.Discount, true
	case "monthPostsLimit":
		return m.MonthPostsLimit, true
	}
	return nil, false
}

// DefaultMemberTypes возвращает типы участников, с которыми стартует хранилище.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{ID: MemberTypeBasic, Discount: 0, MonthPostsLimit: 20},
		{ID: MemberTypeBusiness, Discount: 5, MonthPostsLimit: 100},
	}
}

// ChangeMemberType — частичное обновление типа участника.
type ChangeMemberType struct {
	Discount        *float64 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	MonthPostsLimit *int     `json:"monthPostsLimit,omitempty" validate:"omitempty,gte=0"`
}

func (c ChangeMemberType) Apply(m *MemberType) {
	if c.Discount != nil {
		m.Discount = *c.Discount
	}
	if c.MonthPostsLimit != nil {
		m.MonthPostsLimit = *c.MonthPostsLimit
	}
}
