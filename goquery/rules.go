package goquery

// Static noise-removal rule sets. Order matters throughout: structural
// selectors are applied first to cheaply drop whole sub-trees before the
// per-element attribute scan, and candidate selectors are tried first
// match wins, with no scoring beyond order.

// structuralSelectors lists the sub-trees deleted wholesale during the
// first filtering stage. Selectors that fail to compile are skipped, not
// fatal.
var structuralSelectors = []string{
	// Scripts, styles, and embedded media.
	"script", "style", "noscript", "template",
	"object", "embed", "video", "audio", "canvas", "svg", "map",

	// Navigational landmarks.
	"nav", "header", "footer", "aside",
	`[role="navigation"]`, `[role="banner"]`, `[role="complementary"]`, `[role="contentinfo"]`,
	".nav", ".navbar", ".gnb", ".lnb", ".menu", ".breadcrumb", ".breadcrumbs", ".pagination",

	// Sidebars and widgets.
	".sidebar", ".side-bar", "#sidebar", ".widget",

	// Ad, sponsor, and promo containers.
	".ad", ".ads", ".advert", ".advertisement", ".adsbygoogle",
	`[class^="ad-"]`, `[class*=" ad-"]`, `[class*="ads-"]`,
	`[id^="ad-"]`, `[id*="ads-"]`,
	".sponsor", ".sponsored", ".promo", ".promotion",

	// CTA, subscription, and newsletter blocks.
	".cta", ".call-to-action", ".subscribe", ".subscription",
	".newsletter", ".signup", ".sign-up", ".paywall",

	// Comment, discussion, and social-share sections.
	".comment", ".comments", "#comments", ".discussion", "#disqus_thread", ".reply",
	".social", ".social-share", ".share", ".share-buttons", ".sns",

	// Related-content blocks.
	".related", ".related-articles", ".recommend", ".recommended",
	".popular", ".trending", ".more-stories",

	// Author-bio, byline, and date metadata blocks.
	".byline", ".author-bio", ".author-info", ".writer-info",
	".article-meta", ".post-meta", ".date", ".timestamp",

	// Legal and cookie notices.
	".cookie", ".cookie-banner", ".cookie-notice", ".gdpr",
	".legal", ".copyright", ".disclaimer",

	// Form controls. Buttons are handled separately so that buttons
	// inside an article context survive.
	"input", "select", "textarea",
}

// adKeywords flags an element for removal when its class or id contains
// any of these substrings, case-insensitive.
var adKeywords = []string{
	"advertisement", "sponsored", "promo", "banner", "popup",
}

// spamLinkKeywords removes an anchor when its text contains any of these
// substrings, case-insensitive. Read-more, subscribe, sign-up, download,
// and advertisement in Korean, English, Japanese, and Chinese.
var spamLinkKeywords = []string{
	"더보기", "read more", "続きを読む", "阅读更多",
	"구독", "subscribe", "購読", "订阅",
	"회원가입", "sign up", "登録", "注册",
	"다운로드", "download", "ダウンロード", "下载",
	"광고", "advertisement", "広告", "广告",
}

// candidateSelectors is the content locator's priority list:
// headline-level containers first, generic content containers last. The
// first selector whose noise-filtered text exceeds the minimum content
// length wins.
var candidateSelectors = []string{
	"article",
	`[itemprop="articleBody"]`,
	".article-body", ".article-content", ".article-text",
	".news-content", ".post-content", ".entry-content", ".story-body",
	"#articleBody", "#article-body", "#newsct_article",
	"main", `[role="main"]`,
	".main-content", "#main-content",
	".content", "#content",
	".post", ".entry",
}

// readinessSelectors is the fixed candidate list the bounded readiness
// wait polls while the page is still rendering.
var readinessSelectors = []string{
	"article", "main", `[role="main"]`, ".content", "#content",
}

// altExcludeKeywords disqualifies an image alt text from annotation when
// it contains any of these substrings, case-insensitive.
var altExcludeKeywords = []string{"logo", "icon", "banner"}
