package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role policies are fixed by the product: the four roles and what each may
// reach at the route level. Fine-grained workflow rules (who may move a
// request between which statuses) live in the leave package, not here.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{"admin", "employee", "read"},
	{"admin", "department", "read"},
	{"admin", "department", "manage"},
	{"admin", "leave", "read"},
	{"admin", "leave", "create"},
	{"admin", "leave", "review"},
	{"admin", "leave", "manage"},
	{"admin", "attendance", "read"},
	{"admin", "attendance", "record"},

	{"manager", "employee", "read"},
	{"manager", "department", "read"},
	{"manager", "leave", "read"},
	{"manager", "leave", "create"},
	{"manager", "leave", "review"},
	{"manager", "leave", "manage"},
	{"manager", "attendance", "read"},

	{"assistant", "employee", "read"},
	{"assistant", "department", "read"},
	{"assistant", "leave", "read"},
	{"assistant", "leave", "create"},
	{"assistant", "leave", "manage"},
	{"assistant", "attendance", "read"},
	{"assistant", "attendance", "record"},

	{"employee", "leave", "read"},
	{"employee", "leave", "create"},
	{"employee", "leave", "manage"},
	{"employee", "attendance", "read"},
}

// NewEnforcer builds a casbin enforcer with the static role policy set.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return e, nil
}
