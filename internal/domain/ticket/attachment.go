package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"issuetracker/internal/shared/biztime"
)

// Attachment records a stored file. The bytes live in the blob store; only
// the opaque storage reference is kept here.
type Attachment struct {
	id          uint
	ticketID    uint
	uploaderID  uint
	storageRef  string
	fileName    string
	contentType string
	size        int64
	createdAt   time.Time
}

func NewAttachment(ticketID, uploaderID uint, storageRef, fileName, contentType string, size int64) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if storageRef == "" {
		return nil, fmt.Errorf("storage reference is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("attachment cannot be empty")
	}

	return &Attachment{
		ticketID:    ticketID,
		uploaderID:  uploaderID,
		storageRef:  storageRef,
		fileName:    SanitizeFileName(fileName),
		contentType: contentType,
		size:        size,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id, ticketID, uploaderID uint,
	storageRef, fileName, contentType string,
	size int64,
	createdAt time.Time,
) *Attachment {
	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		uploaderID:  uploaderID,
		storageRef:  storageRef,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		createdAt:   createdAt,
	}
}

// SanitizeFileName keeps only the base name and drops path separators so a
// client-supplied name can be echoed in a Content-Disposition header.
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' || r == 0x7f {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" {
		return "attachment"
	}
	return name
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

// OwnerID is the uploader.
func (a *Attachment) OwnerID() uint {
	return a.uploaderID
}

func (a *Attachment) StorageRef() string {
	return a.storageRef
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	a.id = id
	return nil
}
