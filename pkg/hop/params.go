package hop

import (
	"bytes"
	"encoding/json"
)

// Component discriminator values with a known value shape. Any other
// component decodes to an open map (or a bare string for scalar values).
const (
	ComponentShovel                = "shovel"
	ComponentFederationUpstream    = "federation-upstream"
	ComponentFederationUpstreamSet = "federation-upstream-set"
)

// ParameterValue is the open-shaped payload of a runtime parameter. The
// concrete type is determined by the parameter's component: ShovelDefinition,
// FederationDefinition, or FederationUpstreamSet for the known components,
// GenericValue for arbitrary object payloads, and StringValue for scalar
// payloads.
type ParameterValue interface {
	parameterValue()
}

// GenericValue is the fallback for components with no registered shape, such
// as policy-like definitions and cluster-wide parameters.
type GenericValue map[string]interface{}

func (GenericValue) parameterValue() {}

// StringValue carries a parameter whose value is not a JSON object.
type StringValue string

func (StringValue) parameterValue() {}

// RuntimeParameter is a component-scoped, vhost-scoped configuration value.
type RuntimeParameter struct {
	Name      string         `json:"name"`
	Vhost     string         `json:"vhost"`
	Component string         `json:"component"`
	Value     ParameterValue `json:"value"`
}

// runtimeParameterEnvelope defers value decoding until the component is
// known.
type runtimeParameterEnvelope struct {
	Name      string          `json:"name"`
	Vhost     string          `json:"vhost"`
	Component string          `json:"component"`
	Value     json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes the parameter envelope and dispatches value
// decoding on the component discriminator.
func (p *RuntimeParameter) UnmarshalJSON(data []byte) error {
	var envelope runtimeParameterEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return NewDecodeError("runtime parameter envelope is malformed", err)
	}

	value, err := DecodeParameterValue(envelope.Component, envelope.Value)
	if err != nil {
		return err
	}

	p.Name = envelope.Name
	p.Vhost = envelope.Vhost
	p.Component = envelope.Component
	p.Value = value

	return nil
}

// MarshalJSON encodes the parameter back into the wire envelope.
func (p RuntimeParameter) MarshalJSON() ([]byte, error) {
	envelope := struct {
		Name      string         `json:"name"`
		Vhost     string         `json:"vhost"`
		Component string         `json:"component"`
		Value     ParameterValue `json:"value"`
	}{p.Name, p.Vhost, p.Component, p.Value}

	return json.Marshal(envelope)
}

// DecodeParameterValue decodes a raw parameter value according to the
// component discriminator. Unknown nested keys never cause a failure; only
// a top-level shape mismatch does.
func DecodeParameterValue(component string, raw json.RawMessage) (ParameterValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	// Upstream sets are the one known component whose value is a JSON
	// array rather than an object.
	if component == ComponentFederationUpstreamSet && trimmed[0] == '[' {
		var set FederationUpstreamSet

		err := json.Unmarshal(trimmed, &set)
		if err != nil {
			return nil, NewDecodeError("federation upstream set is malformed", err)
		}

		return set, nil
	}

	if trimmed[0] != '{' {
		var scalar string

		err := json.Unmarshal(trimmed, &scalar)
		if err != nil {
			return nil, NewDecodeError("parameter value is neither an object nor a string", err)
		}

		return StringValue(scalar), nil
	}

	switch component {
	case ComponentShovel:
		var def ShovelDefinition

		err := json.Unmarshal(trimmed, &def)
		if err != nil {
			return nil, NewDecodeError("shovel definition is malformed", err)
		}

		return def, nil
	case ComponentFederationUpstream:
		var def FederationDefinition

		err := json.Unmarshal(trimmed, &def)
		if err != nil {
			return nil, NewDecodeError("federation upstream definition is malformed", err)
		}

		return def, nil
	case ComponentFederationUpstreamSet:
		var set FederationUpstreamSet

		err := json.Unmarshal(trimmed, &set)
		if err != nil {
			return nil, NewDecodeError("federation upstream set is malformed", err)
		}

		return set, nil
	default:
		var generic GenericValue

		err := json.Unmarshal(trimmed, &generic)
		if err != nil {
			return nil, NewDecodeError("parameter value is not an object", err)
		}

		return generic, nil
	}
}

// URISet is a list of broker URIs that also accepts a single string on the
// wire.
type URISet []string

// UnmarshalJSON accepts either a JSON array of strings or one bare string.
func (u *URISet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var single string

		err := json.Unmarshal(trimmed, &single)
		if err != nil {
			return err
		}

		*u = URISet{single}

		return nil
	}

	var many []string

	err := json.Unmarshal(trimmed, &many)
	if err != nil {
		return err
	}

	*u = many

	return nil
}

// MarshalJSON encodes a single URI as a bare string and several as an
// array, matching what the broker's definitions export emits.
func (u URISet) MarshalJSON() ([]byte, error) {
	if len(u) == 1 {
		return json.Marshal(u[0])
	}

	return json.Marshal([]string(u))
}

// ShovelDefinition is the value of a "shovel" runtime parameter.
type ShovelDefinition struct {
	SourceURIs          URISet `json:"src-uri"`
	SourceProtocol      string `json:"src-protocol,omitempty"`
	SourceQueue         string `json:"src-queue,omitempty"`
	SourceExchange      string `json:"src-exchange,omitempty"`
	SourceExchangeKey   string `json:"src-exchange-key,omitempty"`
	SourcePrefetchCount int    `json:"src-prefetch-count,omitempty"`
	SourceDeleteAfter   string `json:"src-delete-after,omitempty"`

	DestinationURIs               URISet `json:"dest-uri"`
	DestinationProtocol           string `json:"dest-protocol,omitempty"`
	DestinationQueue              string `json:"dest-queue,omitempty"`
	DestinationExchange           string `json:"dest-exchange,omitempty"`
	DestinationExchangeKey        string `json:"dest-exchange-key,omitempty"`
	DestinationAddTimestampHeader bool   `json:"dest-add-timestamp-header,omitempty"`
	DestinationAddForwardHeaders  bool   `json:"dest-add-forward-headers,omitempty"`

	AckMode        string `json:"ack-mode,omitempty"`
	ReconnectDelay int    `json:"reconnect-delay,omitempty"`

	// PublishProperties, when present, must be a non-empty map: the server
	// rejects an explicitly empty map, so the client does too before
	// sending anything.
	PublishProperties map[string]interface{} `json:"publish-properties,omitempty"`
}

func (ShovelDefinition) parameterValue() {}

// Validate performs the client-side pre-flight checks applied before a
// shovel declare request is issued.
func (d ShovelDefinition) Validate() error {
	if len(d.SourceURIs) == 0 || d.SourceURIs[0] == "" {
		return &ValidationError{Field: "src-uri", Message: "at least one source URI is required"}
	}

	if len(d.DestinationURIs) == 0 || d.DestinationURIs[0] == "" {
		return &ValidationError{Field: "dest-uri", Message: "at least one destination URI is required"}
	}

	if d.PublishProperties != nil && len(d.PublishProperties) == 0 {
		return &ValidationError{Field: "publish-properties", Message: "must not be an empty map"}
	}

	return nil
}

// FederationDefinition is the value of a "federation-upstream" runtime
// parameter.
type FederationDefinition struct {
	URI     URISet `json:"uri"`
	Expires int    `json:"expires,omitempty"`

	MessageTTL     int    `json:"message-ttl,omitempty"`
	MaxHops        int    `json:"max-hops,omitempty"`
	PrefetchCount  int    `json:"prefetch-count,omitempty"`
	ReconnectDelay int    `json:"reconnect-delay,omitempty"`
	AckMode        string `json:"ack-mode,omitempty"`
	TrustUserID    bool   `json:"trust-user-id,omitempty"`

	Exchange string `json:"exchange,omitempty"`
	Queue    string `json:"queue,omitempty"`
}

func (FederationDefinition) parameterValue() {}

// Validate performs the client-side pre-flight checks applied before an
// upstream declare request is issued.
func (d FederationDefinition) Validate() error {
	if len(d.URI) == 0 || d.URI[0] == "" {
		return &ValidationError{Field: "uri", Message: "upstream URI is required"}
	}

	return nil
}

// FederationUpstreamSet is the value of a "federation-upstream-set" runtime
// parameter: an ordered list of upstream references.
type FederationUpstreamSet []UpstreamSetMember

func (FederationUpstreamSet) parameterValue() {}

// UpstreamSetMember names one upstream in a set, optionally narrowing it to
// a queue or exchange.
type UpstreamSetMember struct {
	Upstream string `json:"upstream"`
	Exchange string `json:"exchange,omitempty"`
	Queue    string `json:"queue,omitempty"`
}

// Validate checks that every member names an upstream.
func (s FederationUpstreamSet) Validate() error {
	if len(s) == 0 {
		return &ValidationError{Field: "upstream-set", Message: "at least one upstream is required"}
	}

	for _, member := range s {
		if member.Upstream == "" {
			return &ValidationError{Field: "upstream", Message: "upstream name is required"}
		}
	}

	return nil
}
