package domain

// BlogArticle is one language's rendering of a post.
type BlogArticle struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// BlogPost carries both language renderings; identity is Slug.
type BlogPost struct {
	Slug  string      `json:"slug"`
	Image string      `json:"image"`
	EN    BlogArticle `json:"en"`
	AR    BlogArticle `json:"ar"`
}

// In returns the article for lang, falling back to English.
func (p BlogPost) In(lang Language) BlogArticle {
	if lang == LangAR {
		return p.AR
	}
	return p.EN
}
