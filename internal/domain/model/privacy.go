package model

// PrivacyPolicy is the published privacy policy of one app.
type PrivacyPolicy struct {
	AppName            string
	Slug               string
	AppStoreURL        string
	PlayStoreURL       string
	LastUpdated        string
	EffectiveDate      string
	ContactEmail       string
	Overview           string
	DataCollected      []DataCollected
	DataUsage          []string
	ThirdPartyServices []ThirdPartyService
	DataRetention      string
	UserRights         []string
	ChildrenPrivacy    string
	Changes            string
}

// DataCollected describes one kind of data an app collects.
type DataCollected struct {
	Type        string
	Description string
	Purpose     string
}

// ThirdPartyService is an external service an app shares data with.
type ThirdPartyService struct {
	Name       string
	Purpose    string
	PrivacyURL string
}
