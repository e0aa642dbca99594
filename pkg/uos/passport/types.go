package passport

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// Within one UOS app (the id domain) users are shared across realms. A realm is
// a partition such as a game server region, and a user owns one persona per realm.

// CustomProperties holds free-form attributes attached to realms, users and personas.
type CustomProperties map[string]any

// RealmStatus is the lifecycle state of a realm.
type RealmStatus string

const (
	RealmStatusCreated     RealmStatus = "Created"
	RealmStatusOpen        RealmStatus = "Open"
	RealmStatusClosed      RealmStatus = "Closed"
	RealmStatusMaintenance RealmStatus = "Maintenance"
)

// Realm is a named partition of the persona space.
type Realm struct {
	RealmID         string           `json:"realmID"`
	IDDomainID      string           `json:"idDomainID"`
	Name            string           `json:"name"`
	Status          RealmStatus      `json:"status"`
	ExternalRealmID string           `json:"externalRealmID,omitempty"`
	CreatedAt       string           `json:"createdAt"`
	ModifiedAt      string           `json:"modifiedAt"`
	Properties      CustomProperties `json:"properties,omitempty"`
}

// CreatedTime parses CreatedAt.
func (r Realm) CreatedTime() (time.Time, error) { return parseTime(r.CreatedAt) }

// ModifiedTime parses ModifiedAt.
func (r Realm) ModifiedTime() (time.Time, error) { return parseTime(r.ModifiedAt) }

// UserStatus is the state of a user account.
type UserStatus string

const (
	UserStatusActive UserStatus = "Active"
	UserStatusBanned UserStatus = "Banned"
	UserStatusSealed UserStatus = "Sealed"
)

// UserAgeGroup is only meaningful once real-name verification has passed.
type UserAgeGroup string

const (
	AgeGroupUnderEight        UserAgeGroup = "UnderEight"
	AgeGroupEightToSixteen    UserAgeGroup = "EightToSixteen"
	AgeGroupSixteenToEighteen UserAgeGroup = "SixteenToEighteen"
	AgeGroupAboveEighteen     UserAgeGroup = "AboveEighteen"
)

// User is an account in the id domain.
type User struct {
	UserID              string           `json:"userID"`
	ExternalUserID      string           `json:"externalUserID"`
	IDDomainID          string           `json:"idDomainID"`
	Deleted             bool             `json:"deleted"`
	UserStatus          UserStatus       `json:"userStatus"`
	CurrentDeviceID     string           `json:"currentDeviceID"`
	LastLoginIP         string           `json:"lastLoginIp"`
	LastLoginAt         string           `json:"lastLoginAt"`
	LoginMethod         string           `json:"loginMethod"`
	LoginPlatform       string           `json:"loginPlatform"`
	LoginIDProvider     string           `json:"loginIDProvider"`
	IsRealNameVerified  bool             `json:"isRealNameVerified"`
	AgeGroup            UserAgeGroup     `json:"ageGroup,omitempty"`
	AboveMinAge         *bool            `json:"aboveMinAge,omitempty"`
	Email               string           `json:"email"`
	EmailVerified       bool             `json:"emailVerified"`
	PhoneNumber         string           `json:"phoneNumber"`
	PhoneNumberVerified bool             `json:"phoneNumberVerified"`
	DisplayName         string           `json:"displayName"`
	AvatarURL           string           `json:"avatarUrl"`
	CreatedAt           string           `json:"createdAt"`
	ModifiedAt          string           `json:"modifiedAt"`
	Properties          CustomProperties `json:"properties"`
}

// LastLoginTime parses LastLoginAt.
func (u User) LastLoginTime() (time.Time, error) { return parseTime(u.LastLoginAt) }

// PersonaStatus is the state of a persona.
type PersonaStatus string

const (
	PersonaStatusActive PersonaStatus = "Active"
	PersonaStatusBanned PersonaStatus = "Banned"
	PersonaStatusSealed PersonaStatus = "Sealed"
)

// Persona is a user's identity within one realm.
type Persona struct {
	RealmID     string           `json:"realmID"`
	UserID      string           `json:"userID"`
	PersonaID   string           `json:"personaID"`
	IDDomainID  string           `json:"idDomainID"`
	DisplayName string           `json:"displayName"`
	Properties  CustomProperties `json:"properties"`
	CreatedAt   string           `json:"createdAt"`
	ModifiedAt  string           `json:"modifiedAt"`
	RealmName   string           `json:"realmName"`
	Status      PersonaStatus    `json:"status"`
}

// FriendRelation links the source persona to one friend.
type FriendRelation struct {
	ID                      string           `json:"id"`
	IDDomainID              string           `json:"idDomainID"`
	SourcePersonalID        string           `json:"sourcePersonalID"`
	SourceRealmID           string           `json:"sourceRealmID"`
	SourceRealmName         string           `json:"sourceRealmName"`
	TargetPersonalID        string           `json:"targetPersonalID"`
	TargetRealmID           string           `json:"targetRealmID"`
	TargetRealmName         string           `json:"targetRealmName"`
	TargetPersonaProperties CustomProperties `json:"targetPersonaProperties,omitempty"`
	DisplayName             string           `json:"displayName"`
	Status                  string           `json:"status"`
	IconURL                 string           `json:"iconUrl,omitempty"`
	CreatedAt               string           `json:"createdAt"`
	ModifiedAt              string           `json:"modifiedAt"`
}

// Validators for the identity field of each DTO.
var (
	ValidRealm          = uos.RequireKeys("realmID")
	ValidUser           = uos.RequireKeys("userID")
	ValidPersona        = uos.RequireKeys("personaID")
	ValidFriendRelation = uos.RequireKeys("id")
)

func parseTime(s string) (time.Time, error) {
	return dateparse.ParseAny(s)
}
