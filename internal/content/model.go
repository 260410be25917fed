// Package content owns the site content document: a single aggregate of
// site chrome and per-page copy, loaded from a flat file and served through
// a time-expiring in-memory cache.
package content

// NavItem is one entry of the site navigation.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// CTA is a call-to-action button.
type CTA struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Variant string `json:"variant,omitempty"`
}

// SiteInfo is the site chrome: branding, navigation, footer and SEO copy.
type SiteInfo struct {
	Branding struct {
		Name     string `json:"name"`
		Subtitle string `json:"subtitle"`
	} `json:"branding"`
	Navigation []NavItem `json:"navigation"`
	CTAButton  CTA       `json:"ctaButton"`
	Footer     struct {
		Copyright string `json:"copyright"`
		Links     struct {
			Email  string `json:"email"`
			GitHub string `json:"github"`
			WeChat string `json:"wechat"`
		} `json:"links"`
	} `json:"footer"`
	SEO struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"seo"`
}

type TitledItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HomeContent is the home page copy.
type HomeContent struct {
	Hero struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		MediaPlaceholder string `json:"mediaPlaceholder,omitempty"`
		CTAs             []CTA  `json:"ctas"`
	} `json:"hero"`
	KPIs []struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"kpis"`
	Advantages struct {
		Title       string       `json:"title"`
		Description string       `json:"description"`
		Items       []TitledItem `json:"items"`
	} `json:"advantages"`
	FeaturedProjects struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		ProjectSlugs []string `json:"projectSlugs"`
	} `json:"featuredProjects"`
	TechStack struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Categories  []struct {
			Title string   `json:"title"`
			Tags  []string `json:"tags"`
		} `json:"categories"`
	} `json:"techStack"`
}

// AboutContent is the about page copy.
type AboutContent struct {
	Page struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"page"`
	Intro struct {
		Summary   string   `json:"summary"`
		WorkStyle []string `json:"workStyle"`
	} `json:"intro"`
	Timeline []struct {
		Period      string `json:"period"`
		Company     string `json:"company,omitempty"`
		Description string `json:"description"`
	} `json:"timeline"`
	Methodology struct {
		Title       string       `json:"title"`
		Description string       `json:"description"`
		Items       []TitledItem `json:"items"`
	} `json:"methodology"`
}

// ContactInfo is the contact page copy.
type ContactInfo struct {
	Page struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"page"`
	Info struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Contacts    struct {
			Email  string `json:"email"`
			GitHub string `json:"github"`
			WeChat string `json:"wechat"`
		} `json:"contacts"`
	} `json:"info"`
	Form struct {
		SubmitHint string `json:"submitHint"`
	} `json:"form"`
}

// ResumeContent is the resume page copy.
type ResumeContent struct {
	Page struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"page"`
	Summary struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	} `json:"summary"`
	Download struct {
		PDFURL string `json:"pdfUrl"`
		Email  string `json:"email"`
	} `json:"download"`
	Preview struct {
		Placeholder string `json:"placeholder"`
	} `json:"preview"`
}

// Document is the complete content aggregate. It is treated as immutable
// once loaded and is never partially updated.
type Document struct {
	Site    SiteInfo      `json:"site"`
	Home    HomeContent   `json:"home"`
	About   AboutContent  `json:"about"`
	Contact ContactInfo   `json:"contact"`
	Resume  ResumeContent `json:"resume"`
}
