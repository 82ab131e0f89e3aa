package view

// Persian copy rendered by the components.
const (
	SiteTitle       = "اخبار تکنولوژی امروز"
	HeroSubtitle    = "به‌روزترین اخبار تکنولوژی را با ما دنبال کنید"
	SearchLabel     = "جستجو"
	SearchHint      = "جستجو در اخبار..."
	CloseLabel      = "بستن"
	LoadingText     = "در حال بارگذاری"
	ReadMore        = "ادامه مطلب"
	UnknownAuthor   = "ناشناس"
	CommentsSuffix  = "نظر"
	CommentHint     = "نظر خود را بنویسید..."
	SubmitComment   = "ارسال نظر"
	CommentSaved    = "نظر شما با موفقیت ثبت شد!"
	NoComments      = "هنوز نظری ثبت نشده است. اولین نظر را شما بنویسید!"
	ReplyLabel      = "پاسخ"
	AdvancedSearch  = "جستجوی پیشرفته"
	NewsletterTitle = "خبرنامه"
	NewsletterHint  = "ایمیل خود را وارد کنید"
	SubscribeLabel  = "اشتراک"
	AboutTitle      = "درباره ما"
	AboutBody       = "ما یک تیم متخصص در زمینه تکنولوژی هستیم که با هدف ارائه آخرین اخبار و تحولات دنیای فناوری، این وب‌سایت را راه‌اندازی کرده‌ایم. هدف ما آگاهی‌رسانی دقیق و به‌روز به کاربران فارسی‌زبان است."
	ContactTitle    = "تماس با ما"
	SendMessage     = "ارسال پیام"
	Copyright       = "© ۱۴۰۳ اخبار تکنولوژی امروز. تمامی حقوق محفوظ است."

	// PlaceholderImage replaces missing article images.
	PlaceholderImage = "https://via.placeholder.com/400x200"
)

type menuItem struct {
	icon string
	text string
	page string
}

var sidebarItems = []menuItem{
	{icon: "fa-home", text: "صفحه اصلی", page: "home"},
	{icon: "fa-info-circle", text: "درباره ما", page: "about"},
	{icon: "fa-envelope", text: "تماس با ما", page: "contact"},
}

var aboutFeatures = []struct{ icon, text string }{
	{"fa-check-circle", "اخبار به‌روز و معتبر"},
	{"fa-clock", "به‌روزرسانی مداوم"},
	{"fa-globe", "پوشش جهانی"},
	{"fa-users", "تیم متخصص"},
}

type formField struct {
	typ     string
	name    string
	label   string
	icon    string
	options []string
}

var contactFields = []formField{
	{typ: "text", name: "name", label: "نام", icon: "fa-user"},
	{typ: "email", name: "email", label: "ایمیل", icon: "fa-envelope"},
	{typ: "tel", name: "phone", label: "شماره تماس", icon: "fa-phone"},
	{typ: "textarea", name: "message", label: "پیام", icon: "fa-comment"},
}

var searchFields = []formField{
	{typ: "text", name: "keyword", label: "کلیدواژه", icon: "fa-search"},
	{typ: "date", name: "date", label: "تاریخ", icon: "fa-calendar"},
	{typ: "select", name: "category", label: "دسته‌بندی", icon: "fa-tag", options: []string{"همه", "تکنولوژی", "علم", "بازی", "سخت‌افزار"}},
}

var socialIcons = []string{"fa-twitter", "fa-facebook", "fa-instagram", "fa-linkedin"}
