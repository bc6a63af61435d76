package domain

import "errors"

// Status represents the activation state of a tenant-chain entity.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Product identifies the notification product a service belongs to.
type Product string

const (
	ProductBoleto    Product = "boleto"
	ProductPix       Product = "pix"
	ProductPagamento Product = "pagamento"
)

// KnownProduct reports whether p is a product this system can build
// payloads for. Unknown products are not an error: the orchestrator maps
// them to an empty dispatch set.
func KnownProduct(p Product) bool {
	switch p {
	case ProductBoleto, ProductPix, ProductPagamento:
		return true
	}
	return false
}

// Situation represents the business state of a service.
type Situation string

const (
	SituationAvailable Situation = "DISPONIVEL"
	SituationCanceled  Situation = "CANCELADO"
	SituationPaid      Situation = "PAGO"
)

// SoftwareHouse is the root tenant (integrator) owning Cedentes.
type SoftwareHouse struct {
	ID     string `json:"id"`
	TaxID  string `json:"tax_id"`
	Token  string `json:"-"` // Never expose
	Status Status `json:"status"`
}

// IsActive returns true if the software house is active.
func (s *SoftwareHouse) IsActive() bool {
	return s.Status == StatusActive
}

// Cedente is the sub-tenant (payee) under a SoftwareHouse.
type Cedente struct {
	ID              string              `json:"id"`
	TaxID           string              `json:"tax_id"`
	Token           string              `json:"-"` // Never expose
	Status          Status              `json:"status"`
	SoftwareHouseID string              `json:"software_house_id"`
	Config          *NotificationConfig `json:"notification_config,omitempty"`
}

// IsActive returns true if the cedente is active.
func (c *Cedente) IsActive() bool {
	return c.Status == StatusActive
}

// Account ("Conta") is a product-scoped container under a Cedente. Its
// notification config, when present, overrides the cedente's.
type Account struct {
	ID       string              `json:"id"`
	Product  Product             `json:"product"`
	BankCode string              `json:"bank_code"`
	Status   Status              `json:"status"`
	Config   *NotificationConfig `json:"notification_config,omitempty"`
	Cedente  *Cedente            `json:"-"`
}

// Agreement ("Convenio") groups services under an Account.
type Agreement struct {
	ID              string   `json:"id"`
	AgreementNumber string   `json:"agreement_number"`
	Account         *Account `json:"-"`
}

// Service ("Servico") is the unit a resend request references. The
// ownership chain (Agreement -> Account -> Cedente) is loaded eagerly with
// the service so validation and config resolution never refetch.
type Service struct {
	ID          string     `json:"id"`
	Product     Product    `json:"product"`
	Status      Status     `json:"status"`
	Situation   Situation  `json:"situation"`
	NossoNumero string     `json:"nosso_numero,omitempty"` // boleto only
	PixID       string     `json:"pix_id,omitempty"`       // pix only
	Agreement   *Agreement `json:"-"`
}

// IsActive returns true if the service is active.
func (s *Service) IsActive() bool {
	return s.Status == StatusActive
}

// OwnerAccount walks the chain to the owning account, nil if unloaded.
func (s *Service) OwnerAccount() *Account {
	if s.Agreement == nil {
		return nil
	}
	return s.Agreement.Account
}

// OwnerCedente walks the chain to the owning cedente, nil if unloaded.
func (s *Service) OwnerCedente() *Cedente {
	if acc := s.OwnerAccount(); acc != nil {
		return acc.Cedente
	}
	return nil
}

// ExtraHeader is an additional header sent with the outbound notification.
type ExtraHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NotificationConfig holds the outbound delivery settings for an account
// or cedente. EventFlags gates dispatch per event type; a type missing
// from the map is treated as enabled.
type NotificationConfig struct {
	URL           string          `json:"url"`
	Email         string          `json:"email,omitempty"`
	EventFlags    map[string]bool `json:"event_flags,omitempty"`
	HeaderEnabled bool            `json:"header_enabled"`
	HeaderName    string          `json:"header_name,omitempty"`
	HeaderValue   string          `json:"header_value,omitempty"`
	ExtraHeaders  []ExtraHeader   `json:"extra_headers,omitempty"`
}

// EventEnabled reports whether dispatch is enabled for the event type.
func (c *NotificationConfig) EventEnabled(eventType string) bool {
	if c.EventFlags == nil {
		return true
	}
	enabled, ok := c.EventFlags[eventType]
	return !ok || enabled
}

// ErrNoConfig signals a chain where neither the account nor the cedente
// carries a notification config. That is a configuration error, not a
// valid state for dispatch.
var ErrNoConfig = errors.New("no notification config on account or cedente")

// ResolveConfig returns the effective notification config for a service:
// the owning account's config when present, the cedente's otherwise.
func (s *Service) ResolveConfig() (*NotificationConfig, error) {
	acc := s.OwnerAccount()
	if acc == nil {
		return nil, ErrNoConfig
	}
	if acc.Config != nil {
		return acc.Config, nil
	}
	if acc.Cedente != nil && acc.Cedente.Config != nil {
		return acc.Cedente.Config, nil
	}
	return nil, ErrNoConfig
}
