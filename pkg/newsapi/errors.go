package newsapi

import "errors"

var (
	// ErrFetchFailed covers transport failures and non-success API responses.
	ErrFetchFailed = errors.New("news fetch failed")
	// ErrNoArticles is returned when the API answers with an empty article list.
	ErrNoArticles = errors.New("news fetch returned no articles")
)

const (
	MsgFetchFailed = "خطا در دریافت اخبار"
	MsgNoArticles  = "هیچ خبری یافت نشد"
	MsgUnknown     = "خطایی رخ داد"
)

// UserMessage maps a fetch error to the localized banner text.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoArticles):
		return MsgNoArticles
	case errors.Is(err, ErrFetchFailed):
		return MsgFetchFailed
	default:
		return MsgUnknown
	}
}
