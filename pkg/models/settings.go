package models

type SiteMetadata struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// SiteSettings is a singleton document.
type SiteSettings struct {
	SocialLinks  map[string]string `bson:"socialLinks" json:"socialLinks"`
	AboutUs      string            `bson:"aboutUs" json:"aboutUs"`
	SiteMetadata SiteMetadata      `bson:"siteMetadata" json:"siteMetadata"`
}
