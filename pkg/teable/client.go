package teable

import "context"

// TablesClient manages tables.
type TablesClient interface {
	Get(ctx context.Context, tableID string) (*Table, error)
	List(ctx context.Context) ([]Table, error)
	Create(ctx context.Context, baseID string, request *TableCreateRequest) (*Table, error)
	Update(ctx context.Context, baseID, tableID string, request *TableUpdateRequest) error
	Delete(ctx context.Context, baseID, tableID string) error
	PermanentDelete(ctx context.Context, baseID, tableID string) error
	GetDefaultViewID(ctx context.Context, baseID, tableID string) (string, error)
}

// RecordsClient manages records within a table.
type RecordsClient interface {
	List(ctx context.Context, tableID string, query *RecordQuery) ([]Record, error)
	Get(ctx context.Context, tableID, recordID string) (*Record, error)
	Status(ctx context.Context, tableID, recordID string) (*RecordStatus, error)
	Create(ctx context.Context, tableID string, fields map[string]interface{}) (*Record, error)
	Update(ctx context.Context, tableID, recordID string, fields map[string]interface{}) (*Record, error)
	Delete(ctx context.Context, tableID, recordID string) error
	BatchCreate(ctx context.Context, tableID string, request *RecordCreateRequest) ([]Record, error)
	BatchUpdate(ctx context.Context, tableID string, request *RecordBatchUpdateRequest) ([]Record, error)
	BatchDelete(ctx context.Context, tableID string, recordIDs []string) error
}

// FieldsClient manages field definitions.
type FieldsClient interface {
	Get(ctx context.Context, tableID, fieldID string) (*Field, error)
	ListForTable(ctx context.Context, tableID string) ([]Field, error)
	Update(ctx context.Context, tableID, fieldID string, request *FieldUpdateRequest) error
	Delete(ctx context.Context, tableID, fieldID string) error
	Convert(ctx context.Context, tableID, fieldID string, request *FieldConvertRequest) (*Field, error)
}

// ViewsClient manages views.
type ViewsClient interface {
	Get(ctx context.Context, tableID, viewID string) (*View, error)
	ListForTable(ctx context.Context, tableID string) ([]View, error)
}

// SpacesClient manages spaces and their membership.
type SpacesClient interface {
	List(ctx context.Context) ([]Space, error)
	Get(ctx context.Context, spaceID string) (*Space, error)
	Create(ctx context.Context, name string) (*Space, error)
	PermanentDelete(ctx context.Context, spaceID string) error
	ListInvitations(ctx context.Context, spaceID string) ([]Invitation, error)
	CreateInvitation(ctx context.Context, spaceID, role string) (*Invitation, error)
	DeleteInvitation(ctx context.Context, spaceID, invitationID string) error
	ListCollaborators(ctx context.Context, spaceID string) ([]Collaborator, error)
	UpdateCollaborator(ctx context.Context, spaceID, userID, role string) error
	DeleteCollaborator(ctx context.Context, spaceID, userID string) error
}

// BasesClient manages bases.
type BasesClient interface {
	List(ctx context.Context) ([]Base, error)
	ListShared(ctx context.Context) ([]Base, error)
	ListForSpace(ctx context.Context, spaceID string) ([]Base, error)
	Get(ctx context.Context, baseID string) (*Base, error)
	Create(ctx context.Context, request *BaseCreateRequest) (*Base, error)
	Duplicate(ctx context.Context, baseID, spaceID, name string, withRecords bool) (*Base, error)
	PermanentDelete(ctx context.Context, baseID string) error
	GetPermission(ctx context.Context, baseID string) (map[string]bool, error)
	Query(ctx context.Context, baseID, query string) ([]map[string]interface{}, error)
}

// AttachmentsClient uploads and downloads record attachments.
type AttachmentsClient interface {
	Upload(ctx context.Context, tableID, recordID, fieldID string, filename string, data []byte) (*Record, error)
	UploadViaURL(ctx context.Context, tableID, recordID, fieldID, fileURL string) (*Record, error)
	Notify(ctx context.Context, token, filename string) (*Attachment, error)
	Download(ctx context.Context, token, filename string) ([]byte, error)
}

// AuthClient covers account endpoints.
type AuthClient interface {
	GetUser(ctx context.Context) (*User, error)
	Signin(ctx context.Context, email, password string) (*User, error)
	Signout(ctx context.Context) error
	ChangePassword(ctx context.Context, password, newPassword string) error
}

// CommentsClient manages comments on records.
type CommentsClient interface {
	List(ctx context.Context, tableID, recordID string) ([]Comment, error)
	Get(ctx context.Context, tableID, recordID, commentID string) (*Comment, error)
	Create(ctx context.Context, tableID, recordID string, content []map[string]interface{}, quoteID string) error
	Update(ctx context.Context, tableID, recordID, commentID string, content []map[string]interface{}) error
	Delete(ctx context.Context, tableID, recordID, commentID string) error
}

// Client is the top-level interface for the Teable API.
type Client interface {
	Tables() TablesClient
	Records() RecordsClient
	Fields() FieldsClient
	Views() ViewsClient
	Spaces() SpacesClient
	Bases() BasesClient
	Attachments() AttachmentsClient
	Auth() AuthClient
	Comments() CommentsClient

	// ClearCache drops every cached resource.
	ClearCache()
}
