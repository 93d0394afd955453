package record

// Column names follow the legacy usuarios schema (see migrations/0001_init.sql).
const (
	SelectRecords = `
		SELECT id, nome, cpf, cep, logradouro, bairro, cidade, estado, created_at, updated_at
		FROM usuarios
		ORDER BY updated_at DESC, id DESC
	`
	SelectRecordByID = `
		SELECT id, nome, cpf, cep, logradouro, bairro, cidade, estado, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`
	InsertRecord = `
		INSERT INTO usuarios (nome, cpf, cep, logradouro, bairro, cidade, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, nome, cpf, cep, logradouro, bairro, cidade, estado, created_at, updated_at
	`
	UpdateRecordByID = `
		UPDATE usuarios
		SET nome = $1,
		    cpf = $2,
		    cep = $3,
		    logradouro = $4,
		    bairro = $5,
		    cidade = $6,
		    estado = $7,
		    updated_at = now()
		WHERE id = $8
		RETURNING
		  id, nome, cpf, cep, logradouro, bairro, cidade, estado, created_at, updated_at
	`
	DeleteRecordByID = `
		DELETE FROM usuarios
		WHERE id = $1
		RETURNING
		  id, nome, cpf, cep, logradouro, bairro, cidade, estado, created_at, updated_at
	`
	ExistsByCpf              = `SELECT EXISTS (SELECT 1 FROM usuarios WHERE cpf = $1)`
	ExistsByCpfExcludingByID = `SELECT EXISTS (SELECT 1 FROM usuarios WHERE cpf = $1 AND id <> $2)`
)
