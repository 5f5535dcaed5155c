package teable

// Table represents a table within a base.
type Table struct {
	ID               string  `json:"id"                         yaml:"id"`
	Name             string  `json:"name"                       yaml:"name"`
	DBTableName      string  `json:"dbTableName,omitempty"      yaml:"dbTableName,omitempty"`
	Description      *string `json:"description,omitempty"      yaml:"description,omitempty"`
	Icon             *string `json:"icon,omitempty"             yaml:"icon,omitempty"`
	Order            float64 `json:"order,omitempty"            yaml:"order,omitempty"`
	DefaultViewID    string  `json:"defaultViewId,omitempty"    yaml:"defaultViewId,omitempty"`
	LastModifiedTime string  `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
}

// TableCreateRequest is the payload for creating a table.
type TableCreateRequest struct {
	Name         string                   `json:"name"`
	DBTableName  string                   `json:"dbTableName"`
	Description  string                   `json:"description,omitempty"`
	Icon         string                   `json:"icon,omitempty"`
	Fields       []map[string]interface{} `json:"fields,omitempty"`
	Views        []map[string]interface{} `json:"views,omitempty"`
	Records      []map[string]interface{} `json:"records,omitempty"`
	Order        *int                     `json:"order,omitempty"`
	FieldKeyType string                   `json:"fieldKeyType,omitempty"`
}

// TableUpdateRequest carries the mutable table attributes.
type TableUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// Field represents a field definition on a table.
type Field struct {
	ID            string                 `json:"id"                      yaml:"id"`
	Name          string                 `json:"name"                    yaml:"name"`
	Type          string                 `json:"type"                    yaml:"type"`
	Description   *string                `json:"description,omitempty"   yaml:"description,omitempty"`
	Options       map[string]interface{} `json:"options,omitempty"       yaml:"options,omitempty"`
	IsPrimary     bool                   `json:"isPrimary,omitempty"     yaml:"isPrimary,omitempty"`
	IsComputed    bool                   `json:"isComputed,omitempty"    yaml:"isComputed,omitempty"`
	NotNull       bool                   `json:"notNull,omitempty"       yaml:"notNull,omitempty"`
	Unique        bool                   `json:"unique,omitempty"        yaml:"unique,omitempty"`
	CellValueType string                 `json:"cellValueType,omitempty" yaml:"cellValueType,omitempty"`
	DBFieldName   string                 `json:"dbFieldName,omitempty"   yaml:"dbFieldName,omitempty"`
}

// FieldUpdateRequest carries the mutable field metadata.
type FieldUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// FieldConvertRequest changes a field's type and options.
type FieldConvertRequest struct {
	Name        string                 `json:"name,omitempty"`
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Options     map[string]interface{} `json:"options,omitempty"`
}

// View represents a view on a table.
type View struct {
	ID      string                   `json:"id"                yaml:"id"`
	Name    string                   `json:"name"              yaml:"name"`
	Type    string                   `json:"type"              yaml:"type"`
	Sort    map[string]interface{}   `json:"sort,omitempty"    yaml:"sort,omitempty"`
	Filter  map[string]interface{}   `json:"filter,omitempty"  yaml:"filter,omitempty"`
	Group   []map[string]interface{} `json:"group,omitempty"   yaml:"group,omitempty"`
	Options map[string]interface{}   `json:"options,omitempty" yaml:"options,omitempty"`
	Order   float64                  `json:"order,omitempty"   yaml:"order,omitempty"`
}

// Record represents a single row of a table. Fields is keyed by field name
// or field ID depending on the fieldKeyType the caller requested.
type Record struct {
	ID               string                 `json:"id"                         yaml:"id"`
	Fields           map[string]interface{} `json:"fields"                     yaml:"fields"`
	Name             string                 `json:"name,omitempty"             yaml:"name,omitempty"`
	AutoNumber       int                    `json:"autoNumber,omitempty"       yaml:"autoNumber,omitempty"`
	CreatedTime      string                 `json:"createdTime,omitempty"      yaml:"createdTime,omitempty"`
	LastModifiedTime string                 `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	CreatedBy        string                 `json:"createdBy,omitempty"        yaml:"createdBy,omitempty"`
	LastModifiedBy   string                 `json:"lastModifiedBy,omitempty"   yaml:"lastModifiedBy,omitempty"`
}

// RecordStatus reports whether a record is visible in the table and whether
// it has been deleted.
type RecordStatus struct {
	IsVisible bool `json:"isVisible" yaml:"isVisible"`
	IsDeleted bool `json:"isDeleted" yaml:"isDeleted"`
}

// RecordsResponse is the wire shape of list and batch-create record calls.
type RecordsResponse struct {
	Records []Record `json:"records"           yaml:"records"`
	Total   int      `json:"total,omitempty"   yaml:"total,omitempty"`
	Extra   *struct {
		GroupPoints []map[string]interface{} `json:"groupPoints,omitempty"`
	} `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// RecordCreateRequest is the payload for creating records.
type RecordCreateRequest struct {
	Records      []RecordFields         `json:"records"`
	FieldKeyType string                 `json:"fieldKeyType,omitempty"`
	Typecast     bool                   `json:"typecast,omitempty"`
	Order        map[string]interface{} `json:"order,omitempty"`
}

// RecordFields wraps one record's field values.
type RecordFields struct {
	Fields map[string]interface{} `json:"fields"`
}

// RecordUpdateRequest is the payload for updating one record.
type RecordUpdateRequest struct {
	Record       RecordFields           `json:"record"`
	FieldKeyType string                 `json:"fieldKeyType,omitempty"`
	Typecast     bool                   `json:"typecast,omitempty"`
	Order        map[string]interface{} `json:"order,omitempty"`
}

// RecordBatchUpdate identifies one record in a batch update.
type RecordBatchUpdate struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

// RecordBatchUpdateRequest is the payload for updating records in bulk.
type RecordBatchUpdateRequest struct {
	Records      []RecordBatchUpdate    `json:"records"`
	FieldKeyType string                 `json:"fieldKeyType,omitempty"`
	Typecast     bool                   `json:"typecast,omitempty"`
	Order        map[string]interface{} `json:"order,omitempty"`
}

// Space represents a workspace grouping bases.
type Space struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name"           yaml:"name"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// Base represents a database within a space.
type Base struct {
	ID      string  `json:"id"                yaml:"id"`
	Name    string  `json:"name"              yaml:"name"`
	SpaceID string  `json:"spaceId,omitempty" yaml:"spaceId,omitempty"`
	Icon    *string `json:"icon,omitempty"    yaml:"icon,omitempty"`
	Order   float64 `json:"order,omitempty"   yaml:"order,omitempty"`
	Role    string  `json:"role,omitempty"    yaml:"role,omitempty"`
}

// BaseCreateRequest is the payload for creating a base.
type BaseCreateRequest struct {
	SpaceID string `json:"spaceId"`
	Name    string `json:"name,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// User represents an account returned by the auth endpoints.
type User struct {
	ID          string                 `json:"id"                    yaml:"id"`
	Name        string                 `json:"name"                  yaml:"name"`
	Email       string                 `json:"email"                 yaml:"email"`
	Avatar      *string                `json:"avatar,omitempty"      yaml:"avatar,omitempty"`
	Phone       *string                `json:"phone,omitempty"       yaml:"phone,omitempty"`
	NotifyMeta  map[string]interface{} `json:"notifyMeta,omitempty"  yaml:"notifyMeta,omitempty"`
	HasPassword bool                   `json:"hasPassword,omitempty" yaml:"hasPassword,omitempty"`
	IsAdmin     *bool                  `json:"isAdmin,omitempty"     yaml:"isAdmin,omitempty"`
}

// Attachment describes an uploaded file.
type Attachment struct {
	Token        string `json:"token"                  yaml:"token"`
	Size         int64  `json:"size"                   yaml:"size"`
	URL          string `json:"url,omitempty"          yaml:"url,omitempty"`
	Path         string `json:"path,omitempty"         yaml:"path,omitempty"`
	Mimetype     string `json:"mimetype,omitempty"     yaml:"mimetype,omitempty"`
	Width        *int   `json:"width,omitempty"        yaml:"width,omitempty"`
	Height       *int   `json:"height,omitempty"       yaml:"height,omitempty"`
	PresignedURL string `json:"presignedUrl,omitempty" yaml:"presignedUrl,omitempty"`
}

// AttachmentSignature is the presigned upload target returned before a
// token-based upload.
type AttachmentSignature struct {
	URL            string            `json:"url"`
	UploadURL      string            `json:"uploadUrl"`
	Token          string            `json:"token"`
	RequestHeaders map[string]string `json:"requestHeaders,omitempty"`
}

// Comment represents a comment on a record.
type Comment struct {
	ID               string                   `json:"id"                         yaml:"id"`
	Content          []map[string]interface{} `json:"content"                    yaml:"content"`
	CreatedBy        string                   `json:"createdBy,omitempty"        yaml:"createdBy,omitempty"`
	CreatedTime      string                   `json:"createdTime,omitempty"      yaml:"createdTime,omitempty"`
	LastModifiedTime string                   `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	QuoteID          *string                  `json:"quoteId,omitempty"          yaml:"quoteId,omitempty"`
}

// Invitation represents a pending space invitation link.
type Invitation struct {
	InvitationID   string `json:"invitationId"             yaml:"invitationId"`
	Role           string `json:"role"                     yaml:"role"`
	InviteURL      string `json:"inviteUrl,omitempty"      yaml:"inviteUrl,omitempty"`
	InvitationCode string `json:"invitationCode,omitempty" yaml:"invitationCode,omitempty"`
	CreatedBy      string `json:"createdBy,omitempty"      yaml:"createdBy,omitempty"`
	CreatedTime    string `json:"createdTime,omitempty"    yaml:"createdTime,omitempty"`
}

// Collaborator represents a user's membership in a space or base.
type Collaborator struct {
	UserID      string  `json:"userId"               yaml:"userId"`
	UserName    string  `json:"userName,omitempty"   yaml:"userName,omitempty"`
	Email       string  `json:"email,omitempty"      yaml:"email,omitempty"`
	Role        string  `json:"role"                 yaml:"role"`
	Avatar      *string `json:"avatar,omitempty"     yaml:"avatar,omitempty"`
	CreatedTime string  `json:"createdTime,omitempty" yaml:"createdTime,omitempty"`
}
