// Package prompt assembles the system and user messages sent to the
// completion provider for each assistant task.
package prompt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/llm"
	"github.com/Veraticus/sevos/internal/model"
)

// Placeholder is rendered in place of any optional field the caller left empty.
const Placeholder = "N/A"

// Messages is the ordered system and user pair for one completion.
type Messages struct {
	System string
	User   string
}

// Chat returns the pair in the order the completion client expects.
func (m Messages) Chat() []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: m.System},
		{Role: llm.RoleUser, Content: m.User},
	}
}

type taskTemplates struct {
	system *template.Template
	user   *template.Template
}

var funcs = template.FuncMap{
	"na": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return Placeholder
		}
		return s
	},
}

var templates = map[model.Task]taskTemplates{
	model.TaskClassify:       parse(model.TaskClassify, classifySystem, classifyUser),
	model.TaskDraftBid:       parse(model.TaskDraftBid, draftBidSystem, draftBidUser),
	model.TaskExtractInvoice: parse(model.TaskExtractInvoice, extractInvoiceSystem, extractInvoiceUser),
	model.TaskJournalEntry:   parse(model.TaskJournalEntry, journalEntrySystem, journalEntryUser),
	model.TaskSummarize:      parse(model.TaskSummarize, summarizeSystem, summarizeUser),
	model.TaskChat:           parse(model.TaskChat, chatSystem, chatUser),
}

func parse(task model.Task, system, user string) taskTemplates {
	return taskTemplates{
		system: template.Must(template.New(string(task) + "-system").Funcs(funcs).Parse(system)),
		user:   template.Must(template.New(string(task) + "-user").Funcs(funcs).Parse(user)),
	}
}

// Build renders the message pair for task from the caller's input. The input
// must be the request type of the task, by value or pointer. Content
// emptiness is the caller's concern and is not checked here.
func Build(task model.Task, input any) (Messages, error) {
	data, err := templateData(task, input)
	if err != nil {
		return Messages{}, err
	}

	tmpl, ok := templates[task]
	if !ok {
		return Messages{}, fmt.Errorf("%w: no prompt for task %q", common.ErrInvalidInput, task)
	}

	system, err := render(tmpl.system, data)
	if err != nil {
		return Messages{}, err
	}
	user, err := render(tmpl.user, data)
	if err != nil {
		return Messages{}, err
	}
	return Messages{System: system, User: user}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

type enumData struct {
	Buckets    string
	Intents    string
	Priorities string
	Accounts   string
}

func enums() enumData {
	accounts := make([]string, len(model.ChartOfAccounts))
	for i, a := range model.ChartOfAccounts {
		accounts[i] = fmt.Sprintf("- %s: %s", a.Number, a.Name)
	}
	return enumData{
		Buckets:    model.Join(model.Buckets),
		Intents:    model.Join(model.Intents),
		Priorities: model.Join(model.Priorities),
		Accounts:   strings.Join(accounts, "\n"),
	}
}

func templateData(task model.Task, input any) (any, error) {
	switch task {
	case model.TaskClassify:
		req, err := as[model.ClassifyRequest](task, input)
		if err != nil {
			return nil, err
		}
		return struct {
			enumData
			model.ClassifyRequest
		}{enums(), req}, nil

	case model.TaskDraftBid:
		req, err := as[model.BidDraftRequest](task, input)
		if err != nil {
			return nil, err
		}
		lc := model.LoadContext{}
		if req.Context != nil {
			lc = *req.Context
		}
		weight := ""
		if lc.Weight != nil {
			weight = strconv.FormatFloat(*lc.Weight, 'f', -1, 64)
		}
		return map[string]string{
			"Content":       req.Content,
			"ResponseType":  string(req.ResponseType),
			"Tone":          string(req.Tone),
			"CustomerName":  lc.CustomerName,
			"Origin":        lc.Origin,
			"Destination":   lc.Destination,
			"Commodity":     lc.Commodity,
			"Weight":        weight,
			"EquipmentType": lc.EquipmentType,
			"Timeline":      lc.Timeline,
		}, nil

	case model.TaskExtractInvoice:
		return as[model.ExtractInvoiceRequest](task, input)

	case model.TaskJournalEntry:
		req, err := as[model.JournalEntryRequest](task, input)
		if err != nil {
			return nil, err
		}
		if req.InvoiceData == nil {
			return nil, fmt.Errorf("%w: %s prompt needs invoice data", common.ErrInvalidInput, task)
		}
		description := req.InvoiceData.Description
		if description == "" {
			description = "Transportation services"
		}
		return struct {
			enumData
			TransactionType model.TransactionType
			InvoiceNumber   string
			Vendor          string
			Amount          string
			Description     string
		}{
			enumData:        enums(),
			TransactionType: req.TransactionType,
			InvoiceNumber:   req.InvoiceData.InvoiceNumber,
			Vendor:          req.InvoiceData.Vendor,
			Amount:          model.Money(req.InvoiceData.Amount).StringFixed(2),
			Description:     description,
		}, nil

	case model.TaskSummarize:
		req, err := as[model.SummarizeRequest](task, input)
		if err != nil {
			return nil, err
		}
		return struct {
			enumData
			model.SummarizeRequest
		}{enums(), req}, nil

	case model.TaskChat:
		return as[model.ChatRequest](task, input)

	default:
		return nil, fmt.Errorf("%w: unknown task %q", common.ErrInvalidInput, task)
	}
}

// as accepts the request either by value or by non-nil pointer.
func as[T any](task model.Task, input any) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s prompt expects %T, got %T", common.ErrInvalidInput, task, zero, input)
}

// OptionsFor returns the generation settings used for task. Model is left
// empty so the client's configured default applies.
func OptionsFor(task model.Task) llm.Options {
	opts := llm.Options{Task: task, Temperature: 0.7, MaxTokens: 1000}
	switch task {
	case model.TaskDraftBid:
		opts.MaxTokens = 800
	case model.TaskSummarize:
		opts.Temperature = 0.3
		opts.MaxTokens = 400
	case model.TaskChat:
		opts.Temperature = 0.8
		opts.MaxTokens = 500
	case model.TaskClassify, model.TaskExtractInvoice, model.TaskJournalEntry:
	}
	return opts
}
