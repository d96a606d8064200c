package mapper

import (
	"testing"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestEmailMapperRecipientsJSON(t *testing.T) {
	m := NewEmailMapper()

	in := &entity.EmailMessage{
		Id:         uuid.New(),
		UserId:     uuid.New(),
		Subject:    "standup notes",
		Sender:     "boss@example.com",
		Recipients: []string{"a@example.com", "b@example.com"},
	}

	mod := m.ToModel(in)
	if string(mod.Recipients) != `["a@example.com","b@example.com"]` {
		t.Errorf("Recipients JSON = %s", mod.Recipients)
	}

	out := m.ToEntity(mod)
	if len(out.Recipients) != 2 || out.Recipients[0] != "a@example.com" {
		t.Errorf("Recipients = %v, want the original two addresses", out.Recipients)
	}
}

func TestEmailMapperCorruptRecipientsDegradeToEmpty(t *testing.T) {
	m := NewEmailMapper()

	out := m.ToEntity(&model.EmailMessage{
		Id:         uuid.New(),
		Recipients: datatypes.JSON(`not json`),
	})
	if len(out.Recipients) != 0 {
		t.Errorf("Recipients = %v, want empty on corrupt JSON", out.Recipients)
	}
}
