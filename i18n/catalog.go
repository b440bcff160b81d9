package i18n

var pt = map[string]string{
	// generic validation codes
	"required":         "Campo obrigatório.",
	"too_short":        "Valor muito curto.",
	"invalid_email":    "E-mail inválido.",
	"invalid_digits":   "Número de dígitos inválido.",
	"not_allowed":      "Valor não permitido.",
	"mismatch":         "Os valores não coincidem.",
	"invalid_number":   "Número inválido.",
	"must_be_positive": "Deve ser um número positivo.",

	"tableNumber.required":      "Numero da mesa deve ter pelo menos 1 caractere.",
	"tableNumber.too_short":     "Numero da mesa deve ter pelo menos 1 caractere.",
	"name.required":             "Nome é obrigatório.",
	"name.too_short":            "O nome deve ter pelo menos 3 caracteres.",
	"telephone.invalid_digits":  "Telefone inválido: deve conter 11 números",
	"cpf.invalid_digits":        "CPF inválido: deve conter 11 números",
	"email.required":            "E-mail é obrigatório.",
	"password.required":         "Senha é obrigatória.",
	"password.too_short":        "A senha deve ter no mínimo 6 caracteres.",
	"passwordConfirm.mismatch":  "As senhas não coincidem.",
	"waiterName.required":       "Nome do garçom é obrigatório.",
	"productId.required":        "Selecione um produto.",
	"quantity.must_be_positive": "Quantidade deve ser um número inteiro positivo.",
	"price.required":            "Preço é obrigatório.",
	"price.invalid_number":      "Preço inválido.",
	"description.required":      "Descrição é obrigatória.",
	"category.not_allowed":      "Categoria inválida.",
	"paymentType.not_allowed":   "Forma de pagamento inválida.",

	"alert.validation":   "Erro de validação",
	"alert.server_error": "Erro do servidor",
	"alert.network":      "Erro de conexão. Tente novamente.",
	"alert.internal":     "Erro interno. Tente novamente.",

	"error.create":   "Erro ao cadastrar %s",
	"error.delete":   "Erro ao deletar %s",
	"error.load":     "Erro ao carregar %s",
	"error.signin":   "Erro ao fazer login",
	"error.signup":   "Erro ao criar conta",
	"error.pay":      "Erro ao realizar pagamento",
	"error.add_item": "Erro ao adicionar item",

	"tables.noun":              "mesa",
	"tables.title":             "Mesas",
	"tables.created":           "Mesa cadastrada com sucesso!",
	"tables.deleted":           "Mesa deletada com sucesso!",
	"tables.confirm_delete":    "Tem certeza que deseja deletar esta mesa?",
	"waiters.noun":             "garçom",
	"waiters.title":            "Garçons",
	"waiters.created":          "Garçom cadastrado com sucesso!",
	"waiters.deleted":          "Garçom deletado com sucesso!",
	"waiters.confirm_delete":   "Tem certeza que deseja deletar este garçom?",
	"products.noun":            "produto",
	"products.title":           "Produtos",
	"products.created":         "Produto cadastrado com sucesso!",
	"products.deleted":         "Produto deletado com sucesso!",
	"products.confirm_delete":  "Tem certeza que deseja deletar este produto?",
	"customers.noun":           "cliente",
	"customers.title":          "Clientes",
	"customers.created":        "Cliente cadastrado com sucesso!",
	"customers.deleted":        "Cliente deletado com sucesso!",
	"customers.confirm_delete": "Tem certeza que deseja deletar este cliente?",
	"orders.noun":              "pedido",
	"orders.title":             "Pedidos",
	"orders.created":           "Pedido cadastrado com sucesso!",
	"orders.deleted":           "Pedido deletado com sucesso!",
	"orders.confirm_delete":    "Tem certeza que deseja deletar este pedido?",
	"users.noun":               "usuário",
	"users.title":              "Usuários",
	"users.deleted":            "Usuário deletado com sucesso!",
	"users.confirm_delete":     "Tem certeza que deseja deletar este usuário?",
	"payments.noun":            "pagamento",
	"payments.title":           "Pagamentos",
	"payments.deleted":         "Pagamento deletado com sucesso!",
	"payments.confirm_delete":  "Tem certeza que deseja deletar este pagamento?",
	"payments.paid":            "Pagamento realizado com sucesso!",
	"items.noun":               "item",
	"items.created":            "Item adicionado com sucesso!",
	"items.deleted":            "Item deletado com sucesso!",
	"items.confirm_delete":     "Tem certeza que deseja remover este item?",

	"auth.signed_up":  "Conta criada com sucesso! Faça login.",
	"auth.signed_out": "Você saiu da sua conta.",

	"common.loading":   "Carregando...",
	"common.not_found": "Página não encontrada",
	"common.confirm":   "Confirmar",
	"common.cancel":    "Cancelar",
	"common.ok":        "OK",
	"common.delete":    "Deletar",
	"common.save":      "Cadastrar",
	"common.empty":     "Nenhum registro encontrado.",
	"common.logout":    "Sair",
	"common.back":      "Voltar",

	"nav.dashboard":    "Início",
	"nav.satisfaction": "Satisfação",
	"nav.language":     "English",

	"auth.signin":           "Entrar",
	"auth.signup":           "Criar conta",
	"auth.password":         "Senha",
	"auth.password_confirm": "Confirmar senha",
	"auth.no_account":       "Não tem conta? Cadastre-se",
	"auth.have_account":     "Já tem conta? Entrar",

	"field.tableNumber": "Número da mesa",
	"field.status":      "Status",
	"field.name":        "Nome",
	"field.telephone":   "Telefone",
	"field.hiringDate":  "Data de contratação",
	"field.description": "Descrição",
	"field.price":       "Preço",
	"field.category":    "Categoria",
	"field.email":       "E-mail",
	"field.cpf":         "CPF",
	"field.createdAt":   "Cadastrado em",
	"field.waiter":      "Garçom",
	"field.customer":    "Cliente",
	"field.role":        "Perfil",
	"field.paymentType": "Forma de pagamento",
	"field.paymentDate": "Data do pagamento",
	"field.total":       "Total",
	"field.product":     "Produto",
	"field.quantity":    "Quantidade",
	"field.subtotal":    "Subtotal",
	"field.order":       "Pedido",

	"orders.open":      "Abrir",
	"orders.items":     "Itens do pedido",
	"orders.add_item":  "Adicionar item",
	"orders.pay":       "Ir para pagamento",
	"orders.closed":    "Pedido fechado",
	"payments.summary": "Resumo do pagamento",
	"payments.submit":  "Pagar",

	"dashboard.title":   "Painel",
	"dashboard.welcome": "Bem-vindo, %s",

	"satisfaction.title":    "Pesquisa de satisfação",
	"satisfaction.question": "Como foi sua experiência?",
	"satisfaction.1":        "Péssimo",
	"satisfaction.2":        "Ruim",
	"satisfaction.3":        "Regular",
	"satisfaction.4":        "Bom",
	"satisfaction.5":        "Ótimo",
}

var en = map[string]string{
	"required":         "Required.",
	"too_short":        "Too short.",
	"invalid_email":    "Invalid e-mail.",
	"invalid_digits":   "Wrong number of digits.",
	"not_allowed":      "Value not allowed.",
	"mismatch":         "Values do not match.",
	"invalid_number":   "Invalid number.",
	"must_be_positive": "Must be a positive number.",

	"tableNumber.required":      "Table number must have at least 1 character.",
	"tableNumber.too_short":     "Table number must have at least 1 character.",
	"name.too_short":            "Name must have at least 3 characters.",
	"telephone.invalid_digits":  "Invalid phone: must contain 11 digits",
	"cpf.invalid_digits":        "Invalid CPF: must contain 11 digits",
	"password.too_short":        "Password must have at least 6 characters.",
	"passwordConfirm.mismatch":  "Passwords do not match.",
	"quantity.must_be_positive": "Quantity must be a positive whole number.",

	"alert.validation":   "Validation error",
	"alert.server_error": "Server error",
	"alert.network":      "Connection error. Please try again.",
	"alert.internal":     "Internal error. Please try again.",

	"error.create":   "Could not create %s",
	"error.delete":   "Could not delete %s",
	"error.load":     "Could not load %s",
	"error.signin":   "Could not sign in",
	"error.signup":   "Could not create account",
	"error.pay":      "Could not submit payment",
	"error.add_item": "Could not add item",

	"tables.noun":     "table",
	"tables.title":    "Tables",
	"waiters.noun":    "waiter",
	"waiters.title":   "Waiters",
	"products.noun":   "product",
	"products.title":  "Products",
	"customers.noun":  "customer",
	"customers.title": "Customers",
	"orders.noun":     "order",
	"orders.title":    "Orders",
	"users.noun":      "user",
	"users.title":     "Users",
	"payments.noun":   "payment",
	"payments.title":  "Payments",
	"payments.paid":   "Payment submitted!",
	"items.noun":      "item",

	"common.loading":   "Loading...",
	"common.not_found": "Page not found",
	"common.confirm":   "Confirm",
	"common.cancel":    "Cancel",
	"common.delete":    "Delete",
	"common.save":      "Save",
	"common.empty":     "No records found.",
	"common.logout":    "Sign out",
	"common.back":      "Back",

	"nav.dashboard":    "Home",
	"nav.satisfaction": "Satisfaction",
	"nav.language":     "Português",

	"auth.signin":           "Sign in",
	"auth.signup":           "Create account",
	"auth.password":         "Password",
	"auth.password_confirm": "Confirm password",
	"auth.no_account":       "No account? Sign up",
	"auth.have_account":     "Already have an account? Sign in",

	"field.tableNumber": "Table number",
	"field.name":        "Name",
	"field.telephone":   "Phone",
	"field.hiringDate":  "Hiring date",
	"field.description": "Description",
	"field.price":       "Price",
	"field.category":    "Category",
	"field.createdAt":   "Created at",
	"field.waiter":      "Waiter",
	"field.customer":    "Customer",
	"field.role":        "Role",
	"field.paymentType": "Payment type",
	"field.paymentDate": "Payment date",
	"field.product":     "Product",
	"field.quantity":    "Quantity",
	"field.order":       "Order",

	"orders.open":      "Open",
	"orders.items":     "Order items",
	"orders.add_item":  "Add item",
	"orders.pay":       "Go to payment",
	"orders.closed":    "Order closed",
	"payments.summary": "Payment summary",
	"payments.submit":  "Pay",

	"dashboard.title":   "Dashboard",
	"dashboard.welcome": "Welcome, %s",

	"satisfaction.title":    "Satisfaction survey",
	"satisfaction.question": "How was your experience?",
}
