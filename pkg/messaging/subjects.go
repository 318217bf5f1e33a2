package messaging

// StreamName is the JetStream stream that captures every catalog subject.
const StreamName = "CATALOG"

// StreamSubjects is the subject filter of StreamName.
const StreamSubjects = "catalog.>"

const (
	ProductStoreLinkedSubject    = "catalog.product.store.linked"
	ProductStoreUnlinkedSubject  = "catalog.product.store.unlinked"
	ProductStoresReplacedSubject = "catalog.product.stores.replaced"
)
