package domain

// User is an operator profile in the tenant
type User struct {
	ID        int32  `json:"userID"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	RoleName  string `json:"roleName,omitempty"`
	Language  string `json:"language,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// Permission is a named capability granted to the current user
type Permission struct {
	ID   int32  `json:"functionID"`
	Code string `json:"functionCode"`
	Name string `json:"displayName,omitempty"`
}

// ReportFolder groups reports in the report browser
type ReportFolder struct {
	ID   int32  `json:"folderId"`
	Name string `json:"folderName"`
}

// Report is one runnable report definition
type Report struct {
	ID       int32  `json:"reportId"`
	Name     string `json:"name"`
	FolderID int32  `json:"folderId"`
	Category string `json:"reportCategory,omitempty"`
}
