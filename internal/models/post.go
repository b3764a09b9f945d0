package models

import "time"

// SentimentLabel is the coarse lexicon-derived polarity of a piece of text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// WordBreakdown lists the tokens that matched lexicon entries.
type WordBreakdown struct {
	PositiveWords []string `json:"positive_words"`
	NegativeWords []string `json:"negative_words"`
}

// SentimentResult is the outcome of lexicon scoring over free text. Analyzed
// is false when scoring could not run and the zero-value defaults apply.
type SentimentResult struct {
	Score       int            `json:"score"`
	Comparative float64        `json:"comparative"` // score / token count
	Label       SentimentLabel `json:"label"`
	Analyzed    bool           `json:"analyzed"`
	Words       WordBreakdown  `json:"words"`
}

// PostCategory buckets forum posts.
type PostCategory string

const (
	CategoryDiscussion PostCategory = "discussion"
	CategoryPortfolio  PostCategory = "portfolio"
	CategoryStrategy   PostCategory = "strategy"
	CategoryNews       PostCategory = "news"
	CategoryQuestion   PostCategory = "question"
	CategoryAnalysis   PostCategory = "analysis"
)

// Normalize maps unknown categories to discussion.
func (c PostCategory) Normalize() PostCategory {
	switch c {
	case CategoryDiscussion, CategoryPortfolio, CategoryStrategy,
		CategoryNews, CategoryQuestion, CategoryAnalysis:
		return c
	}
	return CategoryDiscussion
}

// StockRef tags a post with a ticker it discusses.
type StockRef struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Post is a forum post. Sentiment is attached when the post is created or its
// content edited, and is immutable until the text changes again.
type Post struct {
	ID        string          `json:"id"`
	AuthorID  string          `json:"author_id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Category  PostCategory    `json:"category"`
	Tags      []string        `json:"tags,omitempty"`
	Stocks    []StockRef      `json:"stocks,omitempty"`
	Sentiment SentimentResult `json:"sentiment"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
