package models

// Post — пост пользователя.
type Post struct {
	ID      string `json:"id"`
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (p Post) RecordID() string { return p.ID }

func (p Post) WithID(id string) Post {
	p.ID = id
	return p
}

func (p Post) Clone() Post { return p }

func (p Post) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID, true
	case "userId":
		return p.UserID, true
	case "title":
		return p.Title, true
	case "content":
		return p.Content, true
	}
	return nil, false
}

// CreatePost используется для приёма данных нового поста из JSON-запроса.
type CreatePost struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ChangePost — частичное обновление поста.
type ChangePost struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

func (c ChangePost) Apply(p *Post) {
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.Content != nil {
		p.Content = *c.Content
	}
}
