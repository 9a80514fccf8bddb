package drive

import (
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/transcode"
)

// Google Workspace MIME types.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
	MimeTypeFolder       = "application/vnd.google-apps.folder"
)

// About: Information about the user, the user's Drive, and system capabilities.
type About struct {
	// AppInstalled: Whether the user has installed the requesting app.
	AppInstalled bool `json:"appInstalled,omitempty"`

	// ExportFormats: A map of source MIME type to possible targets for all
	// supported exports.
	ExportFormats map[string][]string `json:"exportFormats,omitempty"`

	// Kind: Identifies what kind of resource this is. Value: the fixed
	// string "drive#about".
	Kind string `json:"kind,omitempty"`

	// MaxUploadSize: The maximum upload size in bytes.
	MaxUploadSize *transcode.Int64 `json:"maxUploadSize,omitempty"`

	// StorageQuota: The user's storage quota limits and usage.
	StorageQuota *AboutStorageQuota `json:"storageQuota,omitempty"`

	// User: The authenticated user.
	User *User `json:"user,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// AboutStorageQuota: The user's storage quota limits and usage. All fields
// are measured in bytes.
type AboutStorageQuota struct {
	// Limit: The usage limit, if applicable. This will not be present if the
	// user has unlimited storage.
	Limit *transcode.Int64 `json:"limit,omitempty"`

	// Usage: The total usage across all services.
	Usage *transcode.Int64 `json:"usage,omitempty"`

	// UsageInDrive: The usage by all files in Google Drive.
	UsageInDrive *transcode.Int64 `json:"usageInDrive,omitempty"`

	// UsageInDriveTrash: The usage by trashed files in Google Drive.
	UsageInDriveTrash *transcode.Int64 `json:"usageInDriveTrash,omitempty"`
}

// User: Information about a Drive user.
type User struct {
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Kind         string `json:"kind,omitempty"`
	// Me: Whether this user is the requesting user.
	Me           bool   `json:"me,omitempty"`
	PermissionId string `json:"permissionId,omitempty"`
	PhotoLink    string `json:"photoLink,omitempty"`
}

// File: The metadata for a file.
type File struct {
	AppProperties map[string]string `json:"appProperties,omitempty"`

	// ContentHints: Additional information about the content of the file.
	ContentHints *FileContentHints `json:"contentHints,omitempty"`

	// CreatedTime: The time at which the file was created.
	CreatedTime transcode.Time `json:"createdTime,omitzero"`

	Description string `json:"description,omitempty"`

	// DriveId: ID of the shared drive the file resides in.
	DriveId string `json:"driveId,omitempty"`

	// ExplicitlyTrashed: Whether the file has been explicitly trashed, as
	// opposed to recursively trashed from a parent folder.
	ExplicitlyTrashed bool `json:"explicitlyTrashed,omitempty"`

	FileExtension string `json:"fileExtension,omitempty"`

	Id string `json:"id,omitempty"`

	Kind string `json:"kind,omitempty"`

	// Md5Checksum: The MD5 checksum for the content of the file. Only
	// populated for files with content stored in Google Drive.
	Md5Checksum string `json:"md5Checksum,omitempty"`

	MimeType string `json:"mimeType,omitempty"`

	// ModifiedTime: The last time the file was modified by anyone.
	ModifiedTime transcode.Time `json:"modifiedTime,omitzero"`

	Name string `json:"name,omitempty"`

	OriginalFilename string `json:"originalFilename,omitempty"`

	Owners []*User `json:"owners,omitempty"`

	// Parents: The IDs of the parent folders which contain the file.
	Parents []string `json:"parents,omitempty"`

	Properties map[string]string `json:"properties,omitempty"`

	// QuotaBytesUsed: The number of storage quota bytes used by the file.
	QuotaBytesUsed *transcode.Int64 `json:"quotaBytesUsed,omitempty"`

	// Size: Size in bytes of blobs and first party editor files.
	Size *transcode.Int64 `json:"size,omitempty"`

	// Starred: Whether the user has starred the file. Writable bools are
	// pointers so that an update can send false; use googleapi.Bool.
	Starred *bool `json:"starred,omitempty"`

	// ThumbnailLink: A short-lived link to the file's thumbnail, if available.
	ThumbnailLink string `json:"thumbnailLink,omitempty"`

	// Trashed: Whether the file has been trashed. Update with
	// googleapi.Bool(false) to restore it.
	Trashed *bool `json:"trashed,omitempty"`

	// Version: A monotonically increasing version number for the file.
	Version *transcode.Int64 `json:"version,omitempty"`

	// ViewedByMeTime: The last time the file was viewed by the user.
	ViewedByMeTime transcode.Time `json:"viewedByMeTime,omitzero"`

	WebContentLink string `json:"webContentLink,omitempty"`

	WebViewLink string `json:"webViewLink,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// FileContentHints: Additional information about the content of the file.
// These fields are never populated in responses.
type FileContentHints struct {
	// IndexableText: Text to be indexed for the file to improve fullText
	// queries.
	IndexableText string `json:"indexableText,omitempty"`

	// Thumbnail: A thumbnail for the file.
	Thumbnail *FileContentHintsThumbnail `json:"thumbnail,omitempty"`
}

// FileContentHintsThumbnail: A thumbnail for the file.
type FileContentHintsThumbnail struct {
	// Image: The thumbnail data encoded with URL-safe Base64 in the API docs,
	// but accepted as standard Base64 by the service.
	Image transcode.Bytes `json:"image,omitempty"`

	// MimeType: The MIME type of the thumbnail.
	MimeType string `json:"mimeType,omitempty"`
}

// FileList: A list of files.
type FileList struct {
	Files []*File `json:"files,omitempty"`

	// IncompleteSearch: Whether the search process was incomplete.
	IncompleteSearch bool `json:"incompleteSearch,omitempty"`

	Kind string `json:"kind,omitempty"`

	// NextPageToken: The page token for the next page of files. This will
	// be absent if the end of the files list has been reached.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// GeneratedIds: A list of generated file IDs which can be provided in
// create requests.
type GeneratedIds struct {
	Ids   []string `json:"ids,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	Space string   `json:"space,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Change: A change to a file or shared drive.
type Change struct {
	// ChangeType: The type of the change. Possible values are file and drive.
	ChangeType string `json:"changeType,omitempty"`

	DriveId string `json:"driveId,omitempty"`

	// File: The updated state of the file. Present if the type is file and
	// the file has not been removed from this list of changes.
	File *File `json:"file,omitempty"`

	FileId string `json:"fileId,omitempty"`

	Kind string `json:"kind,omitempty"`

	// Removed: Whether the file or shared drive has been removed from this
	// list of changes.
	Removed bool `json:"removed,omitempty"`

	// Time: The time of this change.
	Time transcode.Time `json:"time,omitzero"`
}

// ChangeList: A list of changes for a user.
type ChangeList struct {
	Changes []*Change `json:"changes,omitempty"`

	Kind string `json:"kind,omitempty"`

	// NewStartPageToken: The starting page token for future changes. This
	// will be present only if the end of the current changes list has been
	// reached.
	NewStartPageToken string `json:"newStartPageToken,omitempty"`

	// NextPageToken: The page token for the next page of changes.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// StartPageToken is the starting point for listing future changes.
type StartPageToken struct {
	Kind           string `json:"kind,omitempty"`
	StartPageToken string `json:"startPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Permission: A permission for a file.
type Permission struct {
	AllowFileDiscovery *bool  `json:"allowFileDiscovery,omitempty"`
	Deleted            bool   `json:"deleted,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	Domain             string `json:"domain,omitempty"`
	EmailAddress       string `json:"emailAddress,omitempty"`

	// ExpirationTime: The time at which this permission will expire.
	ExpirationTime transcode.Time `json:"expirationTime,omitzero"`

	Id   string `json:"id,omitempty"`
	Kind string `json:"kind,omitempty"`

	// Role: The role granted by this permission: owner, organizer,
	// fileOrganizer, writer, commenter or reader.
	Role string `json:"role,omitempty"`

	// Type: The type of the grantee: user, group, domain or anyone.
	Type string `json:"type,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// PermissionList: A list of permissions for a file.
type PermissionList struct {
	Kind          string        `json:"kind,omitempty"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
	Permissions   []*Permission `json:"permissions,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Revision: The metadata for a revision to a file.
type Revision struct {
	Id string `json:"id,omitempty"`

	// KeepForever: Whether to keep this revision forever, even if it is no
	// longer the head revision.
	KeepForever *bool `json:"keepForever,omitempty"`

	Kind              string `json:"kind,omitempty"`
	LastModifyingUser *User  `json:"lastModifyingUser,omitempty"`
	Md5Checksum       string `json:"md5Checksum,omitempty"`
	MimeType          string `json:"mimeType,omitempty"`

	ModifiedTime transcode.Time `json:"modifiedTime,omitzero"`

	OriginalFilename string `json:"originalFilename,omitempty"`
	Published        *bool  `json:"published,omitempty"`

	// Size: The size of the revision's content in bytes.
	Size *transcode.Int64 `json:"size,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// RevisionList: A list of revisions of a file.
type RevisionList struct {
	Kind          string      `json:"kind,omitempty"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
	Revisions     []*Revision `json:"revisions,omitempty"`

	googleapi.ServerResponse `json:"-"`
}
