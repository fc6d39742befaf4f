package api

import (
	"time"

	"github.com/dekarrin/marlin/parse"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/svc"
	"github.com/dekarrin/marlin/syntax"
)

// These are the models sent to and received from clients. They are distinct
// from the DAO models, which are closer to the stored form.

type InfoModel struct {
	Version struct {
		Server string `json:"server"`
		Marlin string `json:"marlin"`
	} `json:"version"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserModel struct {
	URI            string `json:"uri"`
	ID             string `json:"id,omitempty"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role,omitempty"`
	Created        string `json:"created,omitempty"`
	Modified       string `json:"modified,omitempty"`
	LastLogoutTime string `json:"last_logout,omitempty"`
	LastLoginTime  string `json:"last_login,omitempty"`
}

type UserUpdateRequest struct {
	ID       UpdateString `json:"id,omitempty"`
	Username UpdateString `json:"username,omitempty"`
	Password UpdateString `json:"password,omitempty"`
	Email    UpdateString `json:"email,omitempty"`
	Role     UpdateString `json:"role,omitempty"`
}

type UpdateString struct {
	Update bool   `json:"u,omitempty"`
	Value  string `json:"v,omitempty"`
}

// ParseRequest is the body of POST /parse. Kind is "query" (the default) or
// "update".
type ParseRequest struct {
	Kind   string `json:"kind,omitempty"`
	Source string `json:"source"`
	Tree   bool   `json:"tree,omitempty"`
}

type ParseResponse struct {
	Kind        string            `json:"kind"`
	OK          bool              `json:"ok"`
	ErrorCount  int               `json:"error_count"`
	Diagnostics []DiagnosticModel `json:"diagnostics"`
	Tree        *NodeModel        `json:"tree,omitempty"`
}

type DiagnosticModel struct {
	Message string `json:"message"`
	Found   string `json:"found"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// NodeModel is one node of a syntax tree. Interior nodes have Kind and
// Children; leaves have Token and Text as well as Start and End.
type NodeModel struct {
	Kind     string       `json:"kind,omitempty"`
	Token    string       `json:"token,omitempty"`
	Text     string       `json:"text,omitempty"`
	Start    int          `json:"start"`
	End      int          `json:"end"`
	Children []*NodeModel `json:"children,omitempty"`
}

type QueryRequest struct {
	Name   string `json:"name"`
	Kind   string `json:"kind,omitempty"`
	Source string `json:"source"`
}

type QueryModel struct {
	URI         string            `json:"uri"`
	ID          string            `json:"id"`
	Owner       string            `json:"owner"`
	Name        string            `json:"name"`
	Kind        string            `json:"kind"`
	Source      string            `json:"source"`
	OK          bool              `json:"ok"`
	Diagnostics []DiagnosticModel `json:"diagnostics"`
	Created     string            `json:"created"`
	Tree        *NodeModel        `json:"tree,omitempty"`
}

type RuleModel struct {
	URI        string   `json:"uri"`
	Name       string   `json:"name"`
	Definition string   `json:"definition"`
	Nullable   bool     `json:"nullable"`
	First      []string `json:"first"`
	Follow     []string `json:"follow"`
}

func userModel(u dao.User) UserModel {
	m := UserModel{
		URI:            PathPrefix + "/users/" + u.ID.String(),
		ID:             u.ID.String(),
		Username:       u.Username,
		Role:           u.Role.String(),
		Created:        u.Created.Format(time.RFC3339),
		Modified:       u.Modified.Format(time.RFC3339),
		LastLogoutTime: u.LastLogoutTime.Format(time.RFC3339),
		LastLoginTime:  u.LastLoginTime.Format(time.RFC3339),
	}
	if u.Email != nil {
		m.Email = u.Email.Address
	}
	return m
}

func diagnosticModels(src string, diags []parse.Diagnostic) []DiagnosticModel {
	models := make([]DiagnosticModel, len(diags))
	for i, d := range diags {
		line, col := d.Position(src)
		models[i] = DiagnosticModel{
			Message: d.Message,
			Found:   d.Found,
			Start:   d.Span.Start,
			End:     d.Span.End,
			Line:    line,
			Column:  col,
		}
	}
	return models
}

func nodeModel(t *syntax.Tree) *NodeModel {
	span := t.Span()
	n := &NodeModel{
		Kind:     t.Kind.String(),
		Start:    span.Start,
		End:      span.End,
		Children: make([]*NodeModel, 0, len(t.Children)),
	}
	for _, ch := range t.Children {
		if ch.Token != nil {
			n.Children = append(n.Children, &NodeModel{
				Token: ch.Token.Kind.String(),
				Text:  ch.Token.Text,
				Start: ch.Token.Span.Start,
				End:   ch.Token.Span.End,
			})
		} else {
			n.Children = append(n.Children, nodeModel(ch.Tree))
		}
	}
	return n
}

func parseResponse(mode parse.Mode, src string, res parse.Result, withTree bool) ParseResponse {
	resp := ParseResponse{
		Kind:        mode.String(),
		OK:          res.OK(),
		ErrorCount:  res.Tree.ErrorCount(),
		Diagnostics: diagnosticModels(src, res.Diagnostics),
	}
	if withTree {
		resp.Tree = nodeModel(res.Tree)
	}
	return resp
}

// queryModel gives q in client form. The stored diagnostics are reported as
// they were when q was saved; res is only used for the tree.
func queryModel(q dao.SavedQuery, res *parse.Result) QueryModel {
	m := QueryModel{
		URI:         PathPrefix + "/queries/" + q.ID.String(),
		ID:          q.ID.String(),
		Owner:       q.UserID.String(),
		Name:        q.Name,
		Kind:        q.Kind,
		Source:      q.Source,
		OK:          len(q.Diagnostics) == 0,
		Diagnostics: make([]DiagnosticModel, len(q.Diagnostics)),
		Created:     q.Created.Format(time.RFC3339),
	}
	for i, d := range q.Diagnostics {
		pd := parse.Diagnostic{Message: d.Message, Found: d.Found}
		pd.Span.Start, pd.Span.End = d.Start, d.End
		m.Diagnostics[i] = diagnosticModels(q.Source, []parse.Diagnostic{pd})[0]
	}
	if res != nil {
		m.Tree = nodeModel(res.Tree)
	}
	return m
}

func ruleModel(r svc.RuleInfo) RuleModel {
	m := RuleModel{
		URI:        PathPrefix + "/grammar/rules/" + r.Name,
		Name:       r.Name,
		Definition: r.Definition,
		Nullable:   r.Nullable,
		First:      r.First,
		Follow:     r.Follow,
	}
	if m.First == nil {
		m.First = []string{}
	}
	if m.Follow == nil {
		m.Follow = []string{}
	}
	return m
}
