package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// trace records every query and action the fakes see, in order
type trace struct {
	events []string
	fail   map[string]error
	text   map[string]string
}

func newTrace() *trace {
	return &trace{fail: make(map[string]error), text: make(map[string]string)}
}

func (t *trace) record(format string, args ...any) {
	t.events = append(t.events, fmt.Sprintf(format, args...))
}

type fakeHandle struct {
	tr *trace
}

func (h *fakeHandle) Goto(url string, _ ...playwright.PageGotoOptions) (playwright.Response, error) {
	h.tr.record("goto %s", url)
	return nil, h.tr.fail["goto "+url]
}

func (h *fakeHandle) Title() (string, error) {
	h.tr.record("title")
	return h.tr.text["title"], nil
}

func (h *fakeHandle) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	desc := selector
	if len(options) > 0 && options[0].Has != nil {
		desc += ":has(" + describe(options[0].Has) + ")"
	}
	return h.locator(desc)
}

func (h *fakeHandle) GetByRole(role playwright.AriaRole, options ...playwright.PageGetByRoleOptions) playwright.Locator {
	var name interface{}
	exact := false
	if len(options) > 0 {
		name = options[0].Name
		exact = options[0].Exact != nil && *options[0].Exact
	}
	return h.locator(roleDesc(role, name, exact))
}

func (h *fakeHandle) GetByTestId(testID interface{}) playwright.Locator {
	return h.locator(fmt.Sprintf("testid=%v", testID))
}

func (h *fakeHandle) GetByText(text interface{}, options ...playwright.PageGetByTextOptions) playwright.Locator {
	exact := len(options) > 0 && options[0].Exact != nil && *options[0].Exact
	return h.locator(textDesc(text, exact))
}

func (h *fakeHandle) GetByTitle(text interface{}, _ ...playwright.PageGetByTitleOptions) playwright.Locator {
	return h.locator(fmt.Sprintf("title=%v", text))
}

func (h *fakeHandle) GetByLabel(text interface{}, _ ...playwright.PageGetByLabelOptions) playwright.Locator {
	return h.locator(fmt.Sprintf("label=%v", text))
}

func (h *fakeHandle) locator(desc string) playwright.Locator {
	return &fakeLocator{desc: desc, tr: h.tr}
}

// pwLocator lets fakeLocator embed playwright.Locator without the embedded
// field's name colliding with its own Locator method.
type pwLocator = playwright.Locator

// fakeLocator implements the Locator methods page objects call. Anything
// else panics on the nil embedded interface.
type fakeLocator struct {
	pwLocator
	desc string
	tr   *trace
}

func (l *fakeLocator) child(suffix string) playwright.Locator {
	return &fakeLocator{desc: l.desc + " >> " + suffix, tr: l.tr}
}

func (l *fakeLocator) act(event string) error {
	l.tr.record("%s", event)
	return l.tr.fail[event]
}

func (l *fakeLocator) First() playwright.Locator {
	return l.child("first")
}

func (l *fakeLocator) Filter(options ...playwright.LocatorFilterOptions) playwright.Locator {
	var parts []string
	if len(options) > 0 {
		if options[0].Has != nil {
			parts = append(parts, "has="+describe(options[0].Has))
		}
		if options[0].HasText != nil {
			parts = append(parts, fmt.Sprintf("hasText=%v", options[0].HasText))
		}
	}
	return l.child("filter(" + strings.Join(parts, ",") + ")")
}

func (l *fakeLocator) Locator(selectorOrLocator interface{}, _ ...playwright.LocatorLocatorOptions) playwright.Locator {
	return l.child(fmt.Sprint(selectorOrLocator))
}

func (l *fakeLocator) GetByRole(role playwright.AriaRole, options ...playwright.LocatorGetByRoleOptions) playwright.Locator {
	var name interface{}
	exact := false
	if len(options) > 0 {
		name = options[0].Name
		exact = options[0].Exact != nil && *options[0].Exact
	}
	return l.child(roleDesc(role, name, exact))
}

func (l *fakeLocator) GetByText(text interface{}, options ...playwright.LocatorGetByTextOptions) playwright.Locator {
	exact := len(options) > 0 && options[0].Exact != nil && *options[0].Exact
	return l.child(textDesc(text, exact))
}

func (l *fakeLocator) WaitFor(options ...playwright.LocatorWaitForOptions) error {
	state, timeout := "", 0.0
	if len(options) > 0 {
		if options[0].State != nil {
			state = string(*options[0].State)
		}
		if options[0].Timeout != nil {
			timeout = *options[0].Timeout
		}
	}
	return l.act(fmt.Sprintf("wait %s %s %.0f", state, l.desc, timeout))
}

func (l *fakeLocator) Click(_ ...playwright.LocatorClickOptions) error {
	return l.act("click " + l.desc)
}

func (l *fakeLocator) Check(_ ...playwright.LocatorCheckOptions) error {
	return l.act("check " + l.desc)
}

func (l *fakeLocator) Fill(value string, _ ...playwright.LocatorFillOptions) error {
	return l.act(fmt.Sprintf("fill %s=%s", l.desc, value))
}

func (l *fakeLocator) ScrollIntoViewIfNeeded(_ ...playwright.LocatorScrollIntoViewIfNeededOptions) error {
	return l.act("scroll " + l.desc)
}

func (l *fakeLocator) SelectOption(values playwright.SelectOptionValues, _ ...playwright.LocatorSelectOptionOptions) ([]string, error) {
	var by, picked string
	switch {
	case values.Labels != nil:
		by, picked = "label", strings.Join(*values.Labels, ",")
	case values.Values != nil:
		by, picked = "value", strings.Join(*values.Values, ",")
	}
	err := l.act(fmt.Sprintf("select %s %s=%s", l.desc, by, picked))
	return []string{picked}, err
}

func (l *fakeLocator) TextContent(_ ...playwright.LocatorTextContentOptions) (string, error) {
	err := l.act("text " + l.desc)
	return l.tr.text[l.desc], err
}

func describe(l playwright.Locator) string {
	if f, ok := l.(*fakeLocator); ok {
		return f.desc
	}
	return fmt.Sprintf("%v", l)
}

func roleDesc(role playwright.AriaRole, name interface{}, exact bool) string {
	desc := "role=" + string(role)
	if name != nil {
		desc += fmt.Sprintf("[name=%v]", name)
	}
	if exact {
		desc += "[exact]"
	}
	return desc
}

func textDesc(text interface{}, exact bool) string {
	desc := fmt.Sprintf("text=%v", text)
	if exact {
		desc += "[exact]"
	}
	return desc
}
