// models/documents.go
package models

import "time"

// DocumentKey names one of the fixed document slots of the profile checklist.
type DocumentKey string

// Personal documents (all required).
const (
	DocRG               DocumentKey = "rg"
	DocCPF              DocumentKey = "cpf"
	DocPhoto            DocumentKey = "photo"
	DocProofOfResidence DocumentKey = "proofOfResidence"
)

// Professional documents (all required).
const (
	DocCRM                   DocumentKey = "crm"
	DocCurriculum            DocumentKey = "curriculum"
	DocCriminalRecord        DocumentKey = "criminalRecord"
	DocEthicalRecord         DocumentKey = "ethicalRecord"
	DocDebtRecord            DocumentKey = "debtRecord"
	DocGraduationCertificate DocumentKey = "graduationCertificate"
)

// Specialist documents (all optional).
const (
	DocRQE                  DocumentKey = "rqe"
	DocPostGradCertificate  DocumentKey = "postGradCertificate"
	DocSpecialistTitle      DocumentKey = "specialistTitle"
	DocRecommendationLetter DocumentKey = "recommendationLetter"
)

// DocumentGroup is one page of the profile checklist.
type DocumentGroup int

const (
	GroupPersonal DocumentGroup = iota
	GroupProfessional
	GroupSpecialist
)

func (g DocumentGroup) String() string {
	switch g {
	case GroupPersonal:
		return "personal"
	case GroupProfessional:
		return "professional"
	case GroupSpecialist:
		return "specialist"
	}
	return "unknown"
}

// PersonalDocuments lists the required slots of the personal group.
var PersonalDocuments = []DocumentKey{DocRG, DocCPF, DocPhoto, DocProofOfResidence}

// ProfessionalDocuments lists the required slots of the professional group.
var ProfessionalDocuments = []DocumentKey{
	DocCRM, DocCurriculum, DocCriminalRecord,
	DocEthicalRecord, DocDebtRecord, DocGraduationCertificate,
}

// SpecialistDocuments lists the optional slots of the specialist group.
var SpecialistDocuments = []DocumentKey{
	DocRQE, DocPostGradCertificate, DocSpecialistTitle, DocRecommendationLetter,
}

// GroupKeys returns the slots belonging to a group.
func GroupKeys(g DocumentGroup) []DocumentKey {
	switch g {
	case GroupPersonal:
		return PersonalDocuments
	case GroupProfessional:
		return ProfessionalDocuments
	case GroupSpecialist:
		return SpecialistDocuments
	}
	return nil
}

// GroupRequired reports whether every slot of the group must be filled before
// the checklist may advance past it. The specialist group is terminal and
// never gates.
func GroupRequired(g DocumentGroup) bool {
	return g == GroupPersonal || g == GroupProfessional
}

// AllDocumentKeys enumerates every slot across the three groups.
func AllDocumentKeys() []DocumentKey {
	keys := make([]DocumentKey, 0, 14)
	keys = append(keys, PersonalDocuments...)
	keys = append(keys, ProfessionalDocuments...)
	keys = append(keys, SpecialistDocuments...)
	return keys
}

// DocumentFile is one staged upload: metadata plus raw content.
type DocumentFile struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// DocumentSet maps slots to staged files. Absent keys mean no file selected.
type DocumentSet map[DocumentKey]*DocumentFile

// Has reports whether every given slot holds a file.
func (s DocumentSet) Has(keys ...DocumentKey) bool {
	for _, k := range keys {
		if s[k] == nil {
			return false
		}
	}
	return true
}

// Missing returns the given slots that hold no file, in order.
func (s DocumentSet) Missing(keys []DocumentKey) []DocumentKey {
	var missing []DocumentKey
	for _, k := range keys {
		if s[k] == nil {
			missing = append(missing, k)
		}
	}
	return missing
}

// ProfileDocumentRecord is the aggregate record persisted after a full
// checklist submission: one retrieval URL per uploaded slot.
type ProfileDocumentRecord struct {
	ID        string            `bson:"id" json:"id"`
	AccountID string            `bson:"accountId" json:"accountId"`
	URLs      map[string]string `bson:"urls" json:"urls"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}
