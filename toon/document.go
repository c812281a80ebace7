package toon

import (
	"bytes"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ============================================================
// Document Codec
// ============================================================
//
// A document is a root block followed by one child block per
// (root record × list field), separated by blank lines:
//
//   clientes[1]{id,name}:
//   1,Alice.
//
//   orders(cliente_id:1)[1]{id,item}:
//   10,Book.

// BlockSeparator is written between blocks.
const BlockSeparator = "\n\n"

// EncodeOptions configures document encoding.
type EncodeOptions struct {
	// RelationNamer names the foreign key of child blocks.
	// Nil means SingularForeignKey.
	RelationNamer RelationNamer
	// Logger receives debug messages about child lists whose elements
	// are not records. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultEncodeOptions returns the default encoding options.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{RelationNamer: SingularForeignKey}
}

// DecodeOptions configures document decoding.
type DecodeOptions struct {
	// Policy handles child blocks that cannot be attached.
	Policy RelationPolicy
	// Logger receives debug messages about dropped blocks.
	// Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultDecodeOptions returns the default (best-effort) decoding options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Policy: BestEffort}
}

// EncodeDocument encodes root records and their list fields as a document.
func EncodeDocument(records []*Value, rootName string) (string, error) {
	return EncodeDocumentWithOptions(records, rootName, DefaultEncodeOptions())
}

// EncodeDocumentWithOptions encodes a document with custom options.
func EncodeDocumentWithOptions(records []*Value, rootName string, opts EncodeOptions) (string, error) {
	if !ValidName(rootName) {
		return "", ErrInvalidName.New(rootName)
	}

	if len(records) == 0 {
		return (&Block{Name: rootName}).String(), nil
	}
	for i, r := range records {
		if !r.IsMap() {
			return "", ErrNotRecord.New(i, r.Type())
		}
	}

	schema := DiscoverSchema(records[0])
	blocks := []*Block{EncodeBlock(rootName, nil, schema.ScalarKeys, records, true)}

	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}
	namer := opts.RelationNamer
	if namer == nil {
		namer = SingularForeignKey
	}
	fk := namer(rootName)

	for i, parent := range records {
		id, ok := parent.Lookup(IDField)
		if !ok {
			continue
		}
		for _, field := range schema.ChildKeys {
			children := parent.Get(field)
			if !children.IsList() || children.Len() == 0 {
				continue
			}
			if !ValidName(field) {
				return "", ErrInvalidName.New(field)
			}
			if !ValidForeignKey(fk) {
				return "", ErrInvalidForeignKey.New(fk)
			}
			parentID := CellText(id)
			if !validParentID(parentID) {
				return "", ErrInvalidParentID.New(i, parentID)
			}
			if n := countNonRecords(children.listVal); n > 0 {
				log.WithFields(logrus.Fields{
					"block":       field,
					"parent_id":   parentID,
					"non_records": n,
				}).Debug("child list holds non-record elements, their cells are written as null")
			}
			rel := &Relation{Key: fk, ParentID: parentID}
			keys := ChildSchema(children.listVal[0])
			blocks = append(blocks, EncodeBlock(field, rel, keys, children.listVal, false))
		}
	}

	var buf bytes.Buffer
	for i, b := range blocks {
		if i > 0 {
			buf.WriteString(BlockSeparator)
		}
		EmitBlock(&buf, b)
	}
	return buf.String(), nil
}

// DecodeDocument decodes a document into root records with their child
// lists attached. Child blocks that cannot be attached are dropped.
func DecodeDocument(text string) ([]*Value, error) {
	return DecodeDocumentWithOptions(text, DefaultDecodeOptions())
}

// DecodeDocumentWithOptions decodes a document with custom options.
// Blank input yields an empty collection.
func DecodeDocumentWithOptions(text string, opts DecodeOptions) ([]*Value, error) {
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	roots := []*Value{}
	if strings.TrimSpace(text) == "" {
		return roots, nil
	}

	br := NewBlockReader(text)
	for {
		b, err := br.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if b.Count != len(b.Rows) {
			log.WithFields(logrus.Fields{
				"block":    b.Name,
				"line":     b.Line,
				"declared": b.Count,
				"rows":     len(b.Rows),
			}).Debug("row count differs from header")
		}

		if b.IsRoot() {
			for _, row := range b.Rows {
				roots = append(roots, BuildRecord(b.Keys, row))
			}
			continue
		}

		if err := resolveChild(roots, b, opts.Policy, log); err != nil {
			return nil, err
		}
	}

	return roots, nil
}

// resolveChild attaches a child block to its parent or applies policy.
func resolveChild(roots []*Value, b *Block, policy RelationPolicy, log logrus.FieldLogger) error {
	if b.Relation == nil {
		err := ErrInvalidRelation.New(b.Line, b.Name, b.RawRelation)
		if policy == Strict {
			return err
		}
		log.WithFields(logrus.Fields{"block": b.Name, "line": b.Line}).
			Debugf("dropping child block: %v", err)
		return nil
	}

	parent := findParent(roots, b.Relation.ParentID)
	if parent == nil {
		err := ErrUnresolvedRelation.New(b.Line, b.Name, b.Relation.ParentID)
		if policy == Strict {
			return err
		}
		log.WithFields(logrus.Fields{
			"block":     b.Name,
			"line":      b.Line,
			"parent_id": b.Relation.ParentID,
		}).Debug("dropping orphan child block")
		return nil
	}

	attach(parent, b)
	return nil
}

func countNonRecords(children []*Value) int {
	n := 0
	for _, c := range children {
		if !c.IsMap() {
			n++
		}
	}
	return n
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
