package application

import "time"

const downloadTimeout = 30 * time.Second

// RegisterAll exposes every command family on r.
func RegisterAll(r *Registry) {
	registerAuth(r)
	registerUsers(r)
	registerSamples(r)
	registerTechniques(r)
	registerInventory(r)
	registerLegislations(r)
	registerFinancialAudits(r)
	registerNotifications(r)
	registerFiles(r)
}

// IDArgs addresses one record.
type IDArgs struct {
	ID int64 `json:"id"`
}

// UpdateArgs replaces the record ID with Data.
type UpdateArgs[P any] struct {
	ID   int64 `json:"id"`
	Data P     `json:"data"`
}

func byID(a IDArgs) []string {
	return []string{idParam(a.ID)}
}

func updateID[P any](a UpdateArgs[P]) []string {
	return []string{idParam(a.ID)}
}

func updateBody[P any](a UpdateArgs[P]) any {
	return a.Data
}

func asBody[A any](a A) any {
	return a
}

// mapped decodes the wire shape W and converts it to T.
func mapped[W any, T any](convert func(W) T) Decoder[T] {
	return func(payload []byte) (T, error) {
		wire, err := DecodeJSON[W](payload)
		if err != nil {
			var zero T
			return zero, err
		}
		return convert(wire), nil
	}
}

func mapSlice[W any, T any](convert func(W) T) func([]W) []T {
	return func(items []W) []T {
		out := make([]T, 0, len(items))
		for _, item := range items {
			out = append(out, convert(item))
		}
		return out
	}
}
