package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/f2fin/directory-dashboard/internal/forms"
)

var _ = Describe("formEditor", func() {
	var (
		draft  *forms.Draft
		editor *formEditor
	)

	BeforeEach(func() {
		draft = forms.NewDraft(forms.Schema{
			Title:  "Create Banker Directory Entry",
			Fields: []forms.Field{{Key: "bankerName", Label: "Banker Name", Required: true}},
			Lists:  []forms.ListField{{Key: "locationCategories", Label: "Location", MinRows: 1}},
		})
		editor = newFormEditor(draft)
	})

	It("should write typed text into the focused cell", func() {
		editor.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Asha")})
		Expect(draft.Get("bankerName")).To(Equal("Asha"))
	})

	It("should keep the keystroke when the row under the cursor was replaced", func() {
		editor.Update(tea.KeyMsg{Type: tea.KeyTab})
		stale := draft.List("locationCategories").Rows()[0].ID

		draft.Reset()
		editor.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("P")})

		rows := draft.List("locationCategories").Rows()
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].ID).NotTo(Equal(stale))
		Expect(draft.List("locationCategories").Strings()).To(Equal([]string{"P"}))
		Expect(editor.slots[editor.focus].row).To(Equal(rows[0].ID))
		Expect(editor.input.Value()).To(Equal("P"))
	})
})
