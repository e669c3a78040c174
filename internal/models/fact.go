package models

// Fact — единица контента «любопытный факт» из локального каталога.
// С точки зрения ядра рекомендаций каталог read-only.
type Fact struct {
	ID      int64
	Title   string
	Content string
	URL     string
}
