package domain

import "github.com/google/uuid"

type ActorKind int

const (
	ActorAnonymous ActorKind = iota
	ActorProducer
	ActorAdmin
)

func (k ActorKind) String() string {
	switch k {
	case ActorProducer:
		return "producer"
	case ActorAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Actor is the principal an operation runs on behalf of. The zero value is
// the anonymous actor.
type Actor struct {
	kind ActorKind
	id   uuid.UUID
}

func Anonymous() Actor { return Actor{} }

func Producer(id uuid.UUID) Actor {
	if id == uuid.Nil {
		return Anonymous()
	}
	return Actor{kind: ActorProducer, id: id}
}

func Admin(id uuid.UUID) Actor {
	if id == uuid.Nil {
		return Anonymous()
	}
	return Actor{kind: ActorAdmin, id: id}
}

func (a Actor) Kind() ActorKind { return a.kind }

func (a Actor) IsAnonymous() bool { return a.kind == ActorAnonymous }

func (a Actor) IsAdmin() bool { return a.kind == ActorAdmin }

// Identity returns the authenticated identity. Admins are identities too and
// own whatever they create; scopes widen their reads separately.
func (a Actor) Identity() (uuid.UUID, bool) {
	if a.kind == ActorAnonymous {
		return uuid.Nil, false
	}
	return a.id, true
}

func (a Actor) String() string {
	if a.kind == ActorAnonymous {
		return a.kind.String()
	}
	return a.kind.String() + ":" + a.id.String()
}
